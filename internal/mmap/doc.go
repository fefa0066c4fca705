// Package mmap maps table files read-only into memory.
//
// On unix systems Open uses mmap(2) and Advise forwards to madvise(2). On
// other platforms the file is read into a heap buffer and Advise does
// nothing, so callers see the same API everywhere.
//
// A Mapping is safe for concurrent reads. Close is idempotent; the slice
// returned by Bytes must not be used after Close.
package mmap
