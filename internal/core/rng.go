package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2. It is created either
// from a fixed seed, for reproducible fills, or from runtime entropy.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewEntropyRNG creates an RNG seeded from the runtime's entropy source.
func NewEntropyRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBool overwrites every element of buf with a uniform random value.
func (r *RNG) FillBool(buf []bool) {
	for i := range buf {
		buf[i] = r.Bool()
	}
}
