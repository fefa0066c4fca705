package tolerance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-12)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 27},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Mixed", []float32{1, -1}, []float32{-1, 1}, 8},
		{"Empty", []float32{}, []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-5)
		})
	}
}

func TestSum(t *testing.T) {
	assert.InDelta(t, 2.1, Sum([]float64{1.05, 1.05}), 1e-12)
	assert.Zero(t, Sum([]float64{}))
}

func TestWithinComponents(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		tol  float64
		want bool
	}{
		{"Identical", []float64{1, 1}, []float64{1, 1}, 0.1, true},
		{"Close", []float64{1, 1}, []float64{1.05, 1.05}, 0.1, true},
		{"OneAxisFar", []float64{1, 1}, []float64{1.05, 2}, 0.1, false},
		{"BoundaryIsStrict", []float64{0}, []float64{0.5}, 0.5, false},
		{"ZeroToleranceNeverMatches", []float64{3}, []float64{3}, 0, false},
		{"NaN", []float64{math.NaN()}, []float64{math.NaN()}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinComponents(tt.a, tt.b, tt.tol))
		})
	}
}

func TestWithinDistance(t *testing.T) {
	// (0.05)² + (0.05)² = 0.005 < 0.2² = 0.04
	assert.True(t, WithinDistance([]float64{1, 1}, []float64{1.05, 1.05}, 0.2))
	// per-axis close but the Euclidean ball is tighter than the box
	assert.False(t, WithinDistance([]float64{0, 0}, []float64{0.09, 0.09}, 0.1))
	assert.True(t, WithinComponents([]float64{0, 0}, []float64{0.09, 0.09}, 0.1))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		tol  float64
		want int
	}{
		{"Equal", []float64{1, 2}, []float64{1, 2}, 0.1, 0},
		{"WithinTolerance", []float64{1, 2}, []float64{1.05, 1.95}, 0.1, 0},
		{"FirstAxisDecides", []float64{0, 9}, []float64{1, 0}, 0.1, -1},
		{"SkipsCloseAxis", []float64{1, 3}, []float64{1.05, 2}, 0.1, 1},
		{"RawSign", []float64{5}, []float64{4.8}, 0.1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b, tt.tol))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a, tt.tol))
			assert.Equal(t, tt.want == 0, WithinComponents(tt.a, tt.b, tt.tol))
		})
	}
}

func TestNonTransitive(t *testing.T) {
	a := []float64{0}
	b := []float64{0.08}
	c := []float64{0.16}

	assert.True(t, WithinComponents(a, b, 0.1))
	assert.True(t, WithinComponents(b, c, 0.1))
	assert.False(t, WithinComponents(a, c, 0.1))
}
