// Package lexicographic deduplicates table rows by sorting them with a
// tolerance-aware lexicographic comparator and merging sorted neighbours.
//
// Ordering and duplicate detection use the same per-component predicate
// (tolerance.WithinComponents), so a group of tolerance-equal rows is always
// contiguous in sorted order as far as the comparator can tell. Because the
// predicate is not transitive, group membership depends on the sorted order:
// a row is dropped when it is tolerance-equal to the last row that was kept,
// not to every member of the group.
//
// # Index Semantics
//
// Result.Positions holds positions into Result.SortedIDs, NOT original row
// ids. Use Result.OriginalIndices to resolve them.
package lexicographic
