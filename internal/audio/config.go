// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesized at play time; there are no sample files.
package audio

import (
	"os"
	"strconv"

	"github.com/vovakirdan/skyland/internal/core"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled    = "SKYLAND_AUDIO_ENABLED"
	EnvVolume     = "SKYLAND_MASTER_VOLUME" // 0-100
	EnvSampleRate = "SKYLAND_SAMPLE_RATE"
)

// Config controls audio output.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	CueVolumes   map[core.Cue]float64
}

// DefaultConfig returns audio enabled at 70% volume.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   44100,
		CueVolumes: map[core.Cue]float64{
			core.CueJump:      0.5,
			core.CueEat:       0.8,
			core.CueFootstep:  0.6,
			core.CueExplosion: 1.0,
		},
	}
}

// LoadConfig applies environment overrides on top of DefaultConfig.
// Malformed values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}

	if v := os.Getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(1, max(0, float64(n)/100))
		}
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}

	return cfg
}

// volume returns the effective gain of a cue.
func (c Config) volume(cue core.Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
