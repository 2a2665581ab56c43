package skyland

import (
	"math"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// notCharging is the jump timer value while no charge is in progress.
const notCharging = math.MaxInt

// Protagonist holds the creature's motion state. Both worlds read it for
// capture placement and rendering.
type Protagonist struct {
	cfg  config.ProtagonistConfig
	jump config.JumpConfig

	cx    int // horizontal position
	vx    int
	ax    int // +1 or -1
	xgoal int

	jt     int  // ticks since charge start, or notCharging
	jy     int  // jump offset, always <= 0
	hang   int  // ticks airborne since charge start
	landed bool // landing already reported for this jump

	dying int // death countdown, 0 while alive
}

// NewProtagonist creates a protagonist in its start state.
func NewProtagonist(cfg config.ProtagonistConfig, jump config.JumpConfig) *Protagonist {
	p := &Protagonist{cfg: cfg, jump: jump}
	p.Reset()
	return p
}

// Reset returns to the start state: grounded, alive, heading right.
func (p *Protagonist) Reset() {
	p.cx = p.cfg.MinX
	p.vx = 0
	p.ax = 1
	p.xgoal = p.cfg.StartGoal
	p.jt = notCharging
	p.jy = 0
	p.hang = 0
	p.landed = false
	p.dying = 0
}

// X returns the horizontal position.
func (p *Protagonist) X() int { return p.cx }

// JumpOffset returns the vertical jump offset (<= 0).
func (p *Protagonist) JumpOffset() int { return p.jy }

// Dying returns the remaining death countdown.
func (p *Protagonist) Dying() int { return p.dying }

// Charging reports whether a jump charge is in progress.
func (p *Protagonist) Charging() bool { return p.jt != notCharging }

// Engage applies a press (true) or release (false) of the single button.
// A press starts a charge only from the ground; the result reports whether
// it did. Input is ignored while dying.
func (p *Protagonist) Engage(pressed bool) bool {
	if p.dying > 0 {
		return false
	}
	if !pressed {
		p.jt = notCharging
		return false
	}
	if p.jy != 0 {
		return false
	}
	p.jt = 0
	p.hang = 0
	p.landed = false
	return true
}

// MoveX advances the horizontal oscillation. When the goal is reached the
// acceleration flips and a new goal is drawn between the old goal and the
// bound in the new direction.
func (p *Protagonist) MoveX(rng Random) {
	p.vx = core.Clamp(p.vx+p.ax, -p.cfg.MaxSpeed, p.cfg.MaxSpeed)
	p.cx = core.Clamp(p.cx+p.vx, p.cfg.MinX, p.cfg.MaxX)

	if (p.ax > 0 && p.cx >= p.xgoal) || (p.ax < 0 && p.cx <= p.xgoal) {
		p.ax = -p.ax
		if p.ax < 0 {
			p.xgoal = between(rng, p.cfg.MinX, p.xgoal)
		} else {
			p.xgoal = between(rng, p.xgoal, p.cfg.MaxX)
		}
	}
}

// StepJump advances the jump arc by one tick. It returns true exactly once
// per jump, on the tick the descent enters the landing window.
func (p *Protagonist) StepJump() bool {
	prev := p.jy
	if p.jt < p.jump.AscentTicks {
		p.jy -= p.jump.AscentStep
	}
	if p.jt != notCharging {
		p.jt++
	}
	if p.jy < 0 {
		p.hang++
	}
	p.jy = min(0, p.jy+p.fallRate())

	if !p.landed && prev < 0 && p.jy > prev && p.jy >= -p.jump.LandingWindow {
		p.landed = true
		return true
	}
	return false
}

// fallRate grows with time airborne, one unit per FallRamp ticks, clamped
// to [FallMin, FallMax].
func (p *Protagonist) fallRate() int {
	return core.Clamp(p.hang/p.jump.FallRamp, p.jump.FallMin, p.jump.FallMax)
}

// Kill enters the death sequence. It reports false if already dying.
// Any charge in progress is cancelled.
func (p *Protagonist) Kill(countdown int) bool {
	if p.dying > 0 {
		return false
	}
	p.dying = countdown
	p.jt = notCharging
	return true
}

// StepDead counts the death sequence down and drifts backward.
// It returns true when the countdown has run out.
func (p *Protagonist) StepDead() bool {
	p.dying--
	if p.dying <= 0 {
		p.dying = 0
		return true
	}
	p.cx -= p.cfg.DeathDrift
	return false
}
