package config

import (
	_ "embed"
)

//go:embed defaults/skyland.yaml
var defaultSkylandYAML []byte

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSkylandYAML))
	copy(out, defaultSkylandYAML)
	return out
}

// DefaultSkylandConfig returns the built-in tuning. It mirrors
// defaults/skyland.yaml and is used when the embedded file cannot be parsed.
func DefaultSkylandConfig() SkylandConfig {
	return SkylandConfig{
		Area: AreaConfig{Width: 160, Height: 160},
		Protagonist: ProtagonistConfig{
			MinX:       20,
			MaxX:       100,
			StartGoal:  100,
			MaxSpeed:   2,
			DeathDrift: 1,
		},
		Jump: JumpConfig{
			AscentTicks:   8,
			AscentStep:    3,
			FallMin:       1,
			FallMax:       3,
			FallRamp:      8,
			LandingWindow: 2,
		},
		Death: DeathConfig{Countdown: 60},
		Flip: FlipConfig{
			InitialDelay: 5,
			Numerator:    125,
			Offset:       13,
			MinDelay:     1,
		},
		Sky: WorldConfig{
			Terrain: TerrainConfig{Min: 160, Max: 160, Start: 160, Goal: 160},
			Capture: CaptureConfig{DX: -30, DY: -60, W: 60, H: 40, JumpFactor: 1},
			Food:    SpawnConfig{Odds: 10, Speed: 2, MinY: 60, MaxY: 160},
			Enemy:   SpawnConfig{Odds: 100, Speed: 4, MinY: 60, MaxY: 160},
		},
		Land: WorldConfig{
			Terrain: TerrainConfig{Min: 60, Max: 160, Start: 60, Goal: 100},
			Capture: CaptureConfig{DX: -50, DY: -100, W: 100, H: 100},
			Food:    SpawnConfig{Odds: 10, Speed: 1, MinY: 0, MaxY: 160},
			Enemy:   SpawnConfig{Odds: 100, Speed: 2, MinY: 0, MaxY: 160},
		},
	}
}
