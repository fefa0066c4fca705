package testutil

import (
	"math/rand/v2"
	"sync"
)

// RNG is a seeded, goroutine-safe source of test tables. Equal seeds yield
// equal tables.
type RNG struct {
	mu   sync.Mutex
	src  *rand.Rand
	seed int64
}

// NewRNG returns a generator seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		src:  rand.New(rand.NewPCG(uint64(seed), 0x66756e69)), //nolint:gosec
		seed: seed,
	}
}

// Seed reports the seed the generator started from.
func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(n)
}

// UniformTable returns height rows of width values drawn from [0, 1), flat
// and row-major.
func (r *RNG) UniformTable(height, width int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	table := make([]float64, height*width)
	for i := range table {
		table[i] = r.src.Float64()
	}
	return table
}

// StackedShuffled stacks copies of the rows of base and shuffles the result.
// origin[i] is the base row that output row i was copied from.
func (r *RNG) StackedShuffled(base []float64, width, copies int) (table []float64, origin []int) {
	rows := len(base) / width

	origin = make([]int, 0, rows*copies)
	for range copies {
		for row := range rows {
			origin = append(origin, row)
		}
	}

	r.mu.Lock()
	r.src.Shuffle(len(origin), func(i, j int) { origin[i], origin[j] = origin[j], origin[i] })
	r.mu.Unlock()

	table = make([]float64, 0, len(origin)*width)
	for _, row := range origin {
		table = append(table, base[row*width:(row+1)*width]...)
	}
	return table, origin
}

// Jittered copies data and moves every value by less than amp in either
// direction.
func (r *RNG) Jittered(data []float64, amp float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, len(data))
	for i := range data {
		out[i] = data[i] + amp*(2*r.src.Float64()-1)
	}
	return out
}

// ToFloat32 narrows a float64 table.
func ToFloat32(data []float64) []float32 {
	out := make([]float32, len(data))
	for i := range data {
		out[i] = float32(data[i])
	}
	return out
}

// IsPermutation reports whether ids holds every value of [0, n) exactly
// once.
func IsPermutation(ids []int, n int) bool {
	if len(ids) != n {
		return false
	}
	seen := make([]bool, n)
	for _, id := range ids {
		if id < 0 || id >= n || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// InverseInRange reports whether every group id in inverse lies in [0, n).
func InverseInRange(inverse []int, n int) bool {
	for _, g := range inverse {
		if g < 0 || g >= n {
			return false
		}
	}
	return true
}
