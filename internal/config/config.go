// Package config provides YAML-based tuning for Skyland: loading,
// validation, the world-flip cadence and a hot-reload watcher.
package config

// SkylandConfig contains every gameplay constant of the simulation.
// Distances are in world units, durations in ticks unless noted.
type SkylandConfig struct {
	Area        AreaConfig        `yaml:"area"`
	Protagonist ProtagonistConfig `yaml:"protagonist"`
	Jump        JumpConfig        `yaml:"jump"`
	Death       DeathConfig       `yaml:"death"`
	Flip        FlipConfig        `yaml:"flip"`
	Sky         WorldConfig       `yaml:"sky"`
	Land        WorldConfig       `yaml:"land"`
}

// AreaConfig is the size of both worlds.
type AreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ProtagonistConfig defines the horizontal oscillation.
type ProtagonistConfig struct {
	MinX       int `yaml:"min_x"`       // lower bound of goal draws
	MaxX       int `yaml:"max_x"`       // upper bound of goal draws
	StartGoal  int `yaml:"start_goal"`  // first goal after reset
	MaxSpeed   int `yaml:"max_speed"`   // |vx| clamp
	DeathDrift int `yaml:"death_drift"` // backward drift per tick while dying
}

// JumpConfig defines the jump arc.
type JumpConfig struct {
	AscentTicks   int `yaml:"ascent_ticks"`   // ticks of held input that raise the arc
	AscentStep    int `yaml:"ascent_step"`    // jy decrease per ascent tick
	FallMin       int `yaml:"fall_min"`       // slowest descent rate
	FallMax       int `yaml:"fall_max"`       // fastest descent rate
	FallRamp      int `yaml:"fall_ramp"`      // airborne ticks per unit of extra fall rate
	LandingWindow int `yaml:"landing_window"` // landing fires once jy enters [-window, 0]; 0 included so a fast fall cannot skip it
}

// DeathConfig defines the death sequence.
type DeathConfig struct {
	Countdown int `yaml:"countdown"`
}

// FlipConfig defines the world-flip cadence. Times are in seconds.
// The mean delay is Numerator / (score + Offset).
type FlipConfig struct {
	InitialDelay float64 `yaml:"initial_delay"`
	Numerator    float64 `yaml:"numerator"`
	Offset       float64 `yaml:"offset"`
	MinDelay     float64 `yaml:"min_delay"`
}

// WorldConfig is the terrain policy of one world.
type WorldConfig struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Capture CaptureConfig `yaml:"capture"`
	Food    SpawnConfig   `yaml:"food"`
	Enemy   SpawnConfig   `yaml:"enemy"`
}

// TerrainConfig is the vertical bob range. Min == Max keeps the terrain still.
type TerrainConfig struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Start int `yaml:"start"`
	Goal  int `yaml:"goal"`
}

// CaptureConfig places the capture rectangle relative to
// (cx, terrain + JumpFactor*jy).
type CaptureConfig struct {
	DX         int `yaml:"dx"`
	DY         int `yaml:"dy"`
	W          int `yaml:"w"`
	H          int `yaml:"h"`
	JumpFactor int `yaml:"jump_factor"`
}

// SpawnConfig controls one entity category of a world.
// Odds of N spawns with probability 1/N per tick; 0 disables spawning.
// Y range is [MinY, MaxY).
type SpawnConfig struct {
	Odds  int `yaml:"odds"`
	Speed int `yaml:"speed"`
	MinY  int `yaml:"min_y"`
	MaxY  int `yaml:"max_y"`
}
