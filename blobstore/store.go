package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for empty names and names that escape the
// store root.
var ErrInvalidName = errors.New("blobstore: invalid blob name")

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt reads len(p) bytes at off, with io.ReaderAt semantics.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
	io.Closer
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// ReadAll opens name and returns its full contents.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), data...), nil
	}

	size := b.Size()
	if size < 0 {
		return nil, fmt.Errorf("blobstore: %s has negative size %d", name, size)
	}
	buf := make([]byte, size)
	if size == 0 {
		return buf, nil
	}
	n, err := b.ReadAt(ctx, buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && int64(n) == size) {
		return nil, fmt.Errorf("blobstore: read %s: %w", name, err)
	}
	if int64(n) != size {
		return nil, fmt.Errorf("blobstore: read %s: got %d of %d bytes: %w", name, n, size, io.ErrUnexpectedEOF)
	}
	return buf, nil
}

// NewReader returns a sequential reader over the whole blob.
func NewReader(ctx context.Context, b Blob) io.Reader {
	return io.NewSectionReader(readerAt{ctx: ctx, b: b}, 0, b.Size())
}

type readerAt struct {
	ctx context.Context
	b   Blob
}

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	return r.b.ReadAt(r.ctx, p, off)
}

// CleanName validates a blob name and normalizes it to slash form without
// leading slashes.
func CleanName(name string) (string, error) {
	name = strings.TrimLeft(strings.ReplaceAll(name, "\\", "/"), "/")
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q escapes the store root", ErrInvalidName, name)
		}
	}
	return name, nil
}

// KeyPrefix normalizes the root prefix of a bucket-backed store: slash
// separated, no leading slash and a trailing slash unless empty, so that
// "runs" and "runs/" both confine the store to "runs/...".
func KeyPrefix(root string) string {
	root = strings.Trim(strings.ReplaceAll(root, "\\", "/"), "/")
	if root == "" {
		return ""
	}
	return root + "/"
}
