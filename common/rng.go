package common

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 with deterministic seeding.
// The simulation only ever asks it for uniform integers in a range, so
// replays with the same seed roll the same drop sequence.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntRange returns a uniform integer in the inclusive range [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
