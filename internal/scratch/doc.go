// Package scratch provides pooled working buffers whose contents are
// unspecified when handed out.
//
// # Uninitialized Buffers
//
// Get returns a slice of the requested length that may contain values left
// behind by a previous user. Callers MUST write every element before reading
// it. Skipping the zeroing pass is the whole point: the engines immediately
// overwrite their keys, orders and rank tables, so clearing them first would
// be wasted work.
//
// Poisoning a pool makes Get fill every buffer with a sentinel value. Tests
// use it to prove that results never depend on stale contents.
package scratch
