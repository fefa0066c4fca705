// Package funi finds the unique rows of dense float tables under a
// floating-point tolerance.
//
// Rows are compared by tolerance, not bit identity, so "duplicate" is not a
// transitive relation: a≈b and b≈c does not imply a≈c. Each engine resolves
// such chains deterministically in its own traversal order, which is why the
// two engines may disagree on the same input.
//
// # Quick Start
//
//	tbl, _ := table.FromRows([][]float64{{0, 0}, {0, 0.05}, {10, 10}})
//	res, _ := funi.Unique(tbl, 0.1)
//	fmt.Println(res.Indices, res.Inverse) // [0 2] [0 0 1]
//
// # Engines
//
// MethodLexicographic (the default) sorts rows with a lexicographic
// comparator that skips components within tolerance, then keeps every row
// that is not within tolerance of the last kept row in every component.
//
// MethodProjection ("axis") sorts rows by their dot product with a metric
// vector (WithMetric, default all ones) and, inside a sliding window of
// nearby projections, merges rows whose Euclidean distance is below the
// tolerance.
//
// # Representatives and Order
//
// With WithStable(true), the default, the representative of every group is
// its lowest original row index. WithSortedIndex(true) additionally orders
// the result by ascending original index and relabels the inverse map, so
// that res.Indices[res.Inverse[r]] is unchanged for every row r.
//
// # Outputs
//
// WithReturnUnique, WithReturnIndex and WithReturnInverse select which of
// the three outputs are materialized. Deselecting all of them is an error
// (ErrNothingToReturn).
//
// # Batches
//
// UniqueBatch deduplicates many independent tables concurrently, optionally
// within the memory and worker budget of a resource.Controller.
package funi
