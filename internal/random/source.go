// Package random provides the seeded randomness source and the
// distribution samplers used by array generation strategies.
//
// Sampling uses math/rand (not crypto/rand): numeric generation wants
// reproducibility given a fixed seed, not cryptographic strength.
package random

import "math/rand"

// Source is a seeded pseudo-random source. A Source with a given seed
// always produces the same stream of variates, which makes every
// distribution-backed generation strategy reproducible.
//
// Source is not safe for concurrent use; each generation run owns its
// own Source.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // reproducible numeric sampling, not crypto
}

// Seed returns a fresh seed drawn from the package-global source, for
// callers that did not pin one explicitly.
func Seed() int64 {
	return rand.Int63() //nolint:gosec // seed material for reproducible sampling
}

// Float64 returns a canonical uniform variate in the half-open
// interval [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// closedDenom is the lattice used for closed-interval draws. 1<<53 is
// the largest power of two exactly representable in a float64 mantissa.
const closedDenom = 1 << 53

// Float64Closed returns a uniform variate in the closed interval
// [0, 1]: both endpoints are reachable.
func (s *Source) Float64Closed() float64 {
	return float64(s.rng.Int63n(closedDenom+1)) / closedDenom
}

// Float64Open returns a uniform variate in the open interval (0, 1).
func (s *Source) Float64Open() float64 {
	for {
		u := s.rng.Float64()
		if u != 0 {
			return u
		}
	}
}
