// Package rng implements the seeded linear-congruential generator used for
// layout jitter.
//
// The recurrence is state = (state*9301 + 49297) mod 233280 and each draw
// returns state/233280. The period is short, which is fine for placing a
// handful of elements; what matters is that the same seed yields the same
// sequence on every platform.
package rng

import "math"

const (
	multiplier = 9301
	increment  = 49297
)

// Modulus bounds the generator state. Integral seeds in [0, Modulus) cover
// every distinct sequence.
const Modulus = 233280

// LCG is a deterministic pseudo-random source. It is not safe for concurrent
// use; create one per generation call.
type LCG struct {
	state float64
}

// New returns a generator seeded with seed. Fractional seeds are allowed.
func New(seed float64) *LCG {
	return &LCG{state: seed}
}

// Float64 advances the generator and returns a value in [0,1).
func (r *LCG) Float64() float64 {
	// The explicit conversion keeps the compiler from fusing the
	// multiply-add, which would change results on FMA-capable targets.
	r.state = math.Mod(float64(r.state*multiplier)+increment, Modulus)
	return r.state / Modulus
}

// Range returns a value in [lo, hi).
func (r *LCG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Intn returns an int in [0, n). It returns 0 when n <= 0.
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(r.Float64()*float64(n)), n-1)
}

// Bool returns true with probability 1/2.
func (r *LCG) Bool() bool {
	return r.Float64() < 0.5
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](r *LCG, items []T) T {
	return items[r.Intn(len(items))]
}
