// Package random provides the sampling helpers used to place and launch stars.
// All sampling goes through a seeded *Rand so runs are reproducible.
package random

import (
	"math/rand"
)

// Rand wraps a seeded source.
type Rand struct {
	rng *rand.Rand
}

// New creates a Rand seeded with the given value.
func New(seed int64) *Rand {
	return FromSource(rand.NewSource(seed))
}

// FromSource creates a Rand drawing from src.
func FromSource(src rand.Source) *Rand {
	return &Rand{rng: rand.New(src)}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Uniform returns lo + f*(hi-lo) for f in [0, 1).
// The bounds may be given in either order; the result always lies within
// the closed span of lo and hi.
func (r *Rand) Uniform(lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// Choice returns one of the candidates with uniform probability.
// It panics if candidates is empty.
func Choice[T any](r *Rand, candidates []T) T {
	if len(candidates) == 0 {
		panic("random: Choice called with no candidates")
	}
	i := int(r.Uniform(0, float64(len(candidates))))
	// Float rounding can never reach len, but keep the index in range anyway.
	if i >= len(candidates) {
		i = len(candidates) - 1
	}
	return candidates[i]
}
