package scratch

import (
	"sync"
	"sync/atomic"
)

// maxPooledLen caps the buffers kept for reuse so one huge table does not
// pin its working memory for the rest of the process.
const maxPooledLen = 1 << 24

// Pool hands out reusable slices of T.
type Pool[T any] struct {
	pool sync.Pool

	poisoned atomic.Bool
	poison   atomic.Value // holds T
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Get returns a slice of length n with unspecified contents.
func (p *Pool[T]) Get(n int) []T {
	if n <= 0 {
		return nil
	}

	var buf []T
	if v := p.pool.Get(); v != nil {
		s := *(v.(*[]T))
		if cap(s) >= n {
			buf = s[:n]
		}
	}
	if buf == nil {
		buf = make([]T, n)
	}

	if p.poisoned.Load() {
		v := p.poison.Load().(T)
		for i := range buf {
			buf[i] = v
		}
	}
	return buf
}

// Put returns buf to the pool. buf must not be used afterwards.
func (p *Pool[T]) Put(buf []T) {
	if cap(buf) == 0 || cap(buf) > maxPooledLen {
		return
	}
	buf = buf[:0]
	p.pool.Put(&buf)
}

// Poison makes every subsequent Get fill its buffer with v.
func (p *Pool[T]) Poison(v T) {
	p.poison.Store(v)
	p.poisoned.Store(true)
}

// Unpoison restores the default behaviour of Get.
func (p *Pool[T]) Unpoison() {
	p.poisoned.Store(false)
}

var (
	// Ints serves index buffers (orders, permutations, rank tables).
	Ints = NewPool[int]()
	// Float32s serves projection keys of float32 tables.
	Float32s = NewPool[float32]()
	// Float64s serves projection keys of float64 tables.
	Float64s = NewPool[float64]()
)

// Floats returns the shared pool for the element type T.
func Floats[T float32 | float64]() *Pool[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(Float32s).(*Pool[T])
	default:
		return any(Float64s).(*Pool[T])
	}
}
