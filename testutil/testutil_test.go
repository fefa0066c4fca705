package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackedShuffled(t *testing.T) {
	rng := NewRNG(7)
	base := rng.UniformTable(5, 2)

	data, origin := rng.StackedShuffled(base, 2, 3)
	assert.Len(t, data, 30)
	assert.Len(t, origin, 15)

	counts := make([]int, 5)
	for i, o := range origin {
		counts[o]++
		assert.Equal(t, base[o*2:(o+1)*2], data[i*2:(i+1)*2])
	}
	assert.Equal(t, []int{3, 3, 3, 3, 3}, counts)
}

func TestDeterministic(t *testing.T) {
	a := NewRNG(42).UniformTable(4, 4)
	b := NewRNG(42).UniformTable(4, 4)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), NewRNG(42).Seed())
}

func TestJittered(t *testing.T) {
	rng := NewRNG(1)
	data := []float64{0, 1, 2, 3}
	out := rng.Jittered(data, 0.01)
	for i := range data {
		assert.InDelta(t, data[i], out[i], 0.01)
	}
}

func TestChecks(t *testing.T) {
	assert.True(t, IsPermutation([]int{2, 0, 1}, 3))
	assert.False(t, IsPermutation([]int{0, 0, 1}, 3))
	assert.False(t, IsPermutation([]int{0, 1}, 3))
	assert.True(t, InverseInRange([]int{0, 1, 1}, 2))
	assert.False(t, InverseInRange([]int{0, 2}, 2))
	assert.Equal(t, []float32{0.5, 2}, ToFloat32([]float64{0.5, 2}))
}
