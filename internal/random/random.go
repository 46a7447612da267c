// Package random abstracts the randomness used by workout generation and
// framework sampling so callers can substitute a seeded source in tests.
package random

import "math/rand/v2"

// Source supplies the two draws the engine needs: a uniform float in
// [0,1) and a uniform int in [0,n).
type Source interface {
	Float64() float64
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
func (defaultSource) IntN(n int) int   { return rand.IntN(n) }

// Default returns a Source backed by the shared math/rand/v2 generator.
func Default() Source { return defaultSource{} }

// Seeded returns a deterministic Source for tests.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}
