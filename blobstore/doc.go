// Package blobstore provides the storage abstraction tables are read from
// and results are written to.
//
// A blob is an immutable byte sequence addressed by a slash-separated name.
// Implementations must be safe for concurrent use and report missing blobs
// with an error satisfying errors.Is(err, ErrNotFound).
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, read through mmap where available
//   - MemoryStore: in-process map, for tests
//   - ThrottledStore: wraps another store and rate-limits its IO
//   - s3.Store: Amazon S3 (and compatible endpoints) via the AWS SDK
//   - minio.Store: MinIO and other S3-compatible servers via minio-go
//
// # Reading Whole Blobs
//
// Tables are decoded from their full contents:
//
//	data, err := blobstore.ReadAll(ctx, store, "points.funi")
package blobstore
