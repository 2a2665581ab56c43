package config

// Cadence computes world-flip delays from the current score.
type Cadence struct {
	cfg FlipConfig
}

// NewCadence creates a cadence for the given flip tuning.
func NewCadence(cfg FlipConfig) Cadence {
	return Cadence{cfg: cfg}
}

// Initial returns the delay before the first flip of a session.
func (c Cadence) Initial() float64 {
	return c.cfg.InitialDelay
}

// MeanDelay returns Numerator / (score + Offset): about 9.6s at score 0
// with the defaults, shrinking towards zero as score grows.
// Negative scores are treated as 0.
func (c Cadence) MeanDelay(score int) float64 {
	if score < 0 {
		score = 0
	}
	return c.cfg.Numerator / (float64(score) + c.cfg.Offset)
}

// Delay maps a uniform sample u in [0, 1) to a delay in
// [MinDelay, MeanDelay(score) + MinDelay).
func (c Cadence) Delay(score int, u float64) float64 {
	return u*c.MeanDelay(score) + c.cfg.MinDelay
}
