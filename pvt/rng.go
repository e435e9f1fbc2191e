package pvt

import "math/rand"

// RunKey uniquely identifies a reproducible sampling run.
// Two runs with the same RunKey and identical inputs MUST produce
// bit-for-bit identical tables.
type RunKey int64

// NewRunKey creates a RunKey from a seed value.
func NewRunKey(seed int64) RunKey {
	return RunKey(seed)
}

// SamplerRNG is the generator owned by one sampling run. It is seeded
// directly from the RunKey, so --seed N reproduces the same draws.
//
// Thread-safety: NOT thread-safe. The sampler consumes it from a single
// goroutine before evaluation fans out; concurrent runs each build their own.
type SamplerRNG struct {
	key RunKey
	rng *rand.Rand
}

// NewSamplerRNG creates a SamplerRNG from a RunKey.
func NewSamplerRNG(key RunKey) *SamplerRNG {
	return &SamplerRNG{key: key, rng: rand.New(rand.NewSource(int64(key)))}
}

// Float64 returns the next draw in [0, 1).
func (r *SamplerRNG) Float64() float64 {
	return r.rng.Float64()
}

// Key returns the RunKey used to create this SamplerRNG.
func (r *SamplerRNG) Key() RunKey {
	return r.key
}
