package core

import "math/rand/v2"

// Rand is the random source explosions draw from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a seeded source, for reproducible sessions.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// processRand draws from the process-wide source.
type processRand struct{}

func (processRand) IntN(n int) int   { return rand.IntN(n) }
func (processRand) Float64() float64 { return rand.Float64() }

// randInt returns a uniform integer in [lo, hi].
func randInt(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// randRange returns a uniform float in [lo, hi).
func randRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
