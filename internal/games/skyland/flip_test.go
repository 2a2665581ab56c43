package skyland

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyland/internal/config"
)

func TestFlipSchedulerInitialDelay(t *testing.T) {
	f := NewFlipScheduler(config.NewCadence(config.DefaultSkylandConfig().Flip))
	f.Reset(2 * time.Second)

	if f.OnLand() {
		t.Error("a session starts in the sky")
	}
	if f.Due() != 7*time.Second {
		t.Errorf("Due() = %v, want 7s", f.Due())
	}
	rng := &scriptedRandom{}
	if f.Update(7*time.Second, 0, rng) {
		t.Error("flip must wait until the due time has passed")
	}
	if !f.Update(7*time.Second+time.Millisecond, 0, rng) {
		t.Error("flip should happen once the due time has passed")
	}
	if !f.OnLand() {
		t.Error("first flip should activate land")
	}
}

func TestFlipSchedulerDelayFromScore(t *testing.T) {
	f := NewFlipScheduler(config.NewCadence(config.DefaultSkylandConfig().Flip))
	f.Reset(0)

	now := 6 * time.Second
	rng := &scriptedRandom{floats: []float64{0, 0.5}}

	f.Update(now, 0, rng)
	if f.Delay() != time.Second {
		t.Errorf("Delay() with u=0 = %v, want the 1s minimum", f.Delay())
	}

	now = f.Due() + time.Millisecond
	f.Update(now, 12, rng)
	// mean at score 12 is 125/25 = 5s; u=0.5 gives 2.5s + 1s.
	if f.Delay() != 3500*time.Millisecond {
		t.Errorf("Delay() = %v, want 3.5s", f.Delay())
	}
	if f.OnLand() {
		t.Error("second flip should return to the sky")
	}
	if f.Due() != now+f.Delay() {
		t.Errorf("Due() = %v, want %v", f.Due(), now+f.Delay())
	}
}

func TestFlipSchedulerNeverInstant(t *testing.T) {
	f := NewFlipScheduler(config.NewCadence(config.DefaultSkylandConfig().Flip))
	f.Reset(0)
	rng := newRandom(5)

	now := 10 * time.Second
	for i := 0; i < 1000; i++ {
		if f.Update(now, i, rng) && f.Delay() < time.Second {
			t.Fatalf("delay %v below the minimum", f.Delay())
		}
		now = f.Due() + time.Millisecond
	}
}
