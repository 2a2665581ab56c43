package core

import "time"

// Clock reports elapsed simulation time.
type Clock interface {
	Now() time.Duration
}

// TickClock derives time from a tick counter, so simulation time only
// advances when the game is stepped.
type TickClock struct {
	Rate  int // ticks per second
	ticks int64
}

// NewTickClock creates a clock for the given tick rate.
// Non-positive rates fall back to 60.
func NewTickClock(rate int) *TickClock {
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{Rate: rate}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Now implements Clock.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(c.Rate)
}

// ManualClock is a Clock whose time is set explicitly.
type ManualClock struct {
	T time.Duration
}

// Now implements Clock.
func (c *ManualClock) Now() time.Duration {
	return c.T
}

// Add advances the clock by d.
func (c *ManualClock) Add(d time.Duration) {
	c.T += d
}

// Seconds converts a duration to fractional seconds.
func Seconds(d time.Duration) float64 {
	return d.Seconds()
}
