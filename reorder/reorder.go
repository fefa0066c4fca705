// Package reorder re-expresses a unique-row result in ascending original
// row order while keeping its inverse map consistent.
package reorder

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/funi/internal/scratch"
)

// ErrInverseOutOfRange is returned when an inverse entry does not point into
// the unique index slice.
var ErrInverseOutOfRange = errors.New("reorder: inverse entry out of range")

// NormalizeOrder sorts uniqueIDs ascending in place and relabels inverse so
// that uniqueIDs[inverse[r]] keeps its value for every row r.
//
// It is a double argsort: perm sorts uniqueIDs, and the inverse permutation
// of perm maps every old position to its new one. inverse may be nil. On
// error neither slice is modified.
func NormalizeOrder(uniqueIDs []int, inverse []int) error {
	n := len(uniqueIDs)
	for r, v := range inverse {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: inverse[%d]=%d, unique count %d", ErrInverseOutOfRange, r, v, n)
		}
	}
	if n == 0 {
		return nil
	}

	perm := scratch.Ints.Get(n)
	defer scratch.Ints.Put(perm)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return cmp.Compare(uniqueIDs[a], uniqueIDs[b])
	})

	// rank[old] = new
	rank := scratch.Ints.Get(n)
	defer scratch.Ints.Put(rank)
	for newPos, oldPos := range perm {
		rank[oldPos] = newPos
	}

	sorted := scratch.Ints.Get(n)
	defer scratch.Ints.Put(sorted)
	for newPos, oldPos := range perm {
		sorted[newPos] = uniqueIDs[oldPos]
	}
	copy(uniqueIDs, sorted)

	for r, v := range inverse {
		inverse[r] = rank[v]
	}
	return nil
}

// IsNormalized reports whether uniqueIDs is in ascending order.
func IsNormalized(uniqueIDs []int) bool {
	return slices.IsSorted(uniqueIDs)
}
