package skyland

import (
	"time"

	"github.com/vovakirdan/skyland/internal/config"
)

// FlipScheduler toggles the active world at score-dependent intervals.
type FlipScheduler struct {
	cadence config.Cadence
	island  bool          // Land is active
	due     time.Duration // next flip time
	delay   time.Duration // last drawn delay
}

// NewFlipScheduler creates a scheduler with the given cadence.
func NewFlipScheduler(c config.Cadence) *FlipScheduler {
	return &FlipScheduler{cadence: c}
}

// Reset activates Sky and schedules the first flip.
func (f *FlipScheduler) Reset(now time.Duration) {
	f.island = false
	f.delay = seconds(f.cadence.Initial())
	f.due = now + f.delay
}

// OnLand reports whether Land is the active world.
func (f *FlipScheduler) OnLand() bool {
	return f.island
}

// Due returns the time of the next flip.
func (f *FlipScheduler) Due() time.Duration {
	return f.due
}

// Delay returns the delay drawn for the pending flip.
func (f *FlipScheduler) Delay() time.Duration {
	return f.delay
}

// MeanDelay returns the mean flip delay in seconds at score.
func (f *FlipScheduler) MeanDelay(score int) float64 {
	return f.cadence.MeanDelay(score)
}

// Update flips the active world once now has passed the due time and
// schedules the next flip. It reports whether a flip happened.
func (f *FlipScheduler) Update(now time.Duration, score int, rng Random) bool {
	if now <= f.due {
		return false
	}
	f.island = !f.island
	f.delay = seconds(f.cadence.Delay(score, rng.Float64()))
	f.due = now + f.delay
	return true
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
