package gm

import (
	"math/rand/v2"
)

// Source provides random numbers. *rand.Rand of math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource samples from the global generator of math/rand/v2.
var DefaultSource Source = globalSource{}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomAround returns a value uniformly sampled from [center-spread/2, center+spread/2).
func RandomAround(src Source, center, spread float64) float64 {
	return center + (src.Float64()-0.5)*spread
}

// RandomVecAround jitters both components of center by up to spread/2.
func RandomVecAround(src Source, center Vec, spread float64) Vec {
	return Vec{
		X: RandomAround(src, center.X, spread),
		Y: RandomAround(src, center.Y, spread),
	}
}

// Pick returns one of the given values, chosen uniformly. Panics if values is empty.
func Pick[T any](src Source, values []T) T {
	return values[src.IntN(len(values))]
}
