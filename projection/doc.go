// Package projection deduplicates table rows by projecting every row onto a
// metric vector, sorting by the projected key and confirming duplicates with
// a squared Euclidean distance test.
//
// The projection is only an approximate pre-ordering: rows with nearby keys
// can be far apart orthogonally to the metric, and pathological metrics can
// push tolerance-close rows apart. The candidate window opened at a row ends
// at the first following row whose key gap reaches the (unsquared)
// tolerance, while the duplicate test itself compares against the squared
// tolerance. Both scales are kept exactly as they are; the window is a
// documented approximation, not a geometric bound.
//
// # Index Semantics
//
// Output.Indices holds ORIGINAL row ids, unlike the lexicographic engine.
//
// # Representatives
//
// Without stable mode the first row visited in key order represents its
// cluster. With stable mode the lowest original row id of the cluster does,
// and the outputs are compacted into ascending original-row order.
//
// Cluster members are only known to be within tolerance of the row that
// opened the window. In stable mode the representative can therefore be
// farther than the tolerance from other members of its own cluster; only
// unstable mode guarantees that every row is within tolerance of its
// representative.
package projection
