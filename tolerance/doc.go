// Package tolerance provides the fuzzy row comparisons shared by the
// deduplication engines.
//
// Two notions of "close" are offered:
//
//   - WithinComponents: every component pair differs by strictly less than
//     the tolerance (a per-axis, Chebyshev-like bound).
//   - WithinDistance: the squared Euclidean distance is strictly less than
//     the squared tolerance (a Euclidean ball).
//
// Neither relation is transitive. A ≈ B and B ≈ C does not imply A ≈ C, and
// callers that group rows must do so by adjacency in a fixed traversal order.
//
// # Usage
//
//	tolerance.WithinComponents(a, b, 1e-9)
//	tolerance.Compare(a, b, 1e-9) // -1, 0, +1
//	key := tolerance.Dot(row, metric)
package tolerance
