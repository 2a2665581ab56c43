package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skyland/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator produces a fixed-length tone whose frequency slides linearly
// from freq to freq+slide over its duration.
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a tone generator. Noise is seeded so every
// playback of a cue sounds the same.
func NewOscillator(freq, slide float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		o.phase += (o.freq + o.slide*progress) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay multiplies a stream by exp(-rate*t).
type decay struct {
	streamer beep.Streamer
	rate     float64
	sr       beep.SampleRate
	position int
}

func newDecay(s beep.Streamer, rate float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize builds the streamer for a cue. Unknown cues yield nil.
func Synthesize(cue core.Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case core.CueJump:
		// Rising square chirp.
		s = newVolume(NewOscillator(220, 440, 120*time.Millisecond, WaveSquare, rate), 0.25)
	case core.CueEat:
		// Two short notes, a fifth apart.
		s = beep.Seq(
			newDecay(NewOscillator(660, 0, 60*time.Millisecond, WaveSine, rate), 20, rate),
			newDecay(NewOscillator(990, 0, 90*time.Millisecond, WaveSine, rate), 20, rate),
		)
	case core.CueFootstep:
		// Low thump under a burst of noise.
		s = beep.Mix(
			newDecay(NewOscillator(90, -40, 80*time.Millisecond, WaveSine, rate), 40, rate),
			newVolume(newDecay(NewOscillator(0, 0, 40*time.Millisecond, WaveNoise, rate), 60, rate), 0.3),
		)
	case core.CueExplosion:
		s = beep.Mix(
			newDecay(NewOscillator(0, 0, 900*time.Millisecond, WaveNoise, rate), 5, rate),
			newVolume(newDecay(NewOscillator(70, -40, 900*time.Millisecond, WaveSine, rate), 4, rate), 0.6),
		)
	default:
		return nil
	}
	return newVolume(s, cfg.volume(cue))
}
