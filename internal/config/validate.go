package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tuning")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first value the simulation cannot run with.
func (c SkylandConfig) Validate() error {
	if c.Area.Width <= 0 || c.Area.Height <= 0 {
		return invalid("area must be positive, got %dx%d", c.Area.Width, c.Area.Height)
	}

	p := c.Protagonist
	if p.MinX > p.MaxX {
		return invalid("protagonist.min_x %d > max_x %d", p.MinX, p.MaxX)
	}
	if p.StartGoal < p.MinX || p.StartGoal > p.MaxX {
		return invalid("protagonist.start_goal %d outside [%d, %d]", p.StartGoal, p.MinX, p.MaxX)
	}
	if p.MaxSpeed <= 0 {
		return invalid("protagonist.max_speed must be positive")
	}
	if p.DeathDrift < 0 {
		return invalid("protagonist.death_drift must not be negative")
	}

	j := c.Jump
	if j.AscentTicks <= 0 || j.AscentStep <= 0 {
		return invalid("jump.ascent_ticks and jump.ascent_step must be positive")
	}
	if j.FallMin <= 0 || j.FallMin > j.FallMax {
		return invalid("jump fall rates must satisfy 0 < fall_min <= fall_max")
	}
	if j.FallRamp <= 0 {
		return invalid("jump.fall_ramp must be positive")
	}
	if j.LandingWindow < 0 {
		return invalid("jump.landing_window must not be negative")
	}

	if c.Death.Countdown <= 0 {
		return invalid("death.countdown must be positive")
	}

	f := c.Flip
	if f.Numerator <= 0 || f.Offset <= 0 {
		return invalid("flip.numerator and flip.offset must be positive")
	}
	if f.MinDelay <= 0 || f.InitialDelay < 0 {
		return invalid("flip.min_delay must be positive and flip.initial_delay not negative")
	}

	if err := c.Sky.validate("sky"); err != nil {
		return err
	}
	return c.Land.validate("land")
}

func (w WorldConfig) validate(name string) error {
	t := w.Terrain
	if t.Min > t.Max {
		return invalid("%s.terrain.min %d > max %d", name, t.Min, t.Max)
	}
	if t.Start < t.Min || t.Start > t.Max || t.Goal < t.Min || t.Goal > t.Max {
		return invalid("%s.terrain start and goal must lie in [%d, %d]", name, t.Min, t.Max)
	}
	if w.Capture.W <= 0 || w.Capture.H <= 0 {
		return invalid("%s.capture must have a positive size", name)
	}
	for kind, s := range map[string]SpawnConfig{"food": w.Food, "enemy": w.Enemy} {
		if s.Odds < 0 {
			return invalid("%s.%s.odds must not be negative", name, kind)
		}
		if s.Speed <= 0 {
			return invalid("%s.%s.speed must be positive", name, kind)
		}
		if s.MinY > s.MaxY {
			return invalid("%s.%s.min_y %d > max_y %d", name, kind, s.MinY, s.MaxY)
		}
	}
	return nil
}
