package skyland

import "math/rand"

// Random is the source of every random draw in a session.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

func newRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from [lo, hi). Reversed bounds are swapped and
// an empty range yields lo.
func between(r Random, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// chance reports a 1-in-odds draw. Non-positive odds never succeed and
// consume no randomness.
func chance(r Random, odds int) bool {
	return odds > 0 && r.Intn(odds) == 0
}
