package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomVecAround(t *testing.T) {
	src := NewSource(42)
	center := Vec{X: 100, Y: 100}

	for range 1000 {
		v := RandomVecAround(src, center, 20)
		require.GreaterOrEqual(t, v.X, 90.0)
		require.Less(t, v.X, 110.0)
		require.GreaterOrEqual(t, v.Y, 90.0)
		require.Less(t, v.Y, 110.0)
	}
}

func TestPick(t *testing.T) {
	src := NewSource(7)
	values := []string{"a", "b", "c", "d"}

	seen := map[string]int{}
	for range 400 {
		seen[Pick(src, values)] += 1
	}

	// every value should show up with a uniform source
	require.Len(t, seen, len(values))
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a := NewSource(1)
	b := NewSource(1)

	for range 10 {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
