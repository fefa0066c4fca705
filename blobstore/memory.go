package blobstore

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps tables in process memory. Names are normalized with
// CleanName, so "a/b" and "/a/b" address the same blob. It is safe for
// concurrent use and mostly serves tests and one-shot pipelines.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (m *MemoryStore) lookup(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return CleanName(name)
}

// Open returns a handle on the current content of name. A later Put does not
// affect handles that are already open.
func (m *MemoryStore) Open(ctx context.Context, name string) (Blob, error) {
	key, err := m.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	data, ok := m.blobs[key]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("blobstore: %s: %w", key, ErrNotFound)
	}
	return memoryBlob(data), nil
}

// Put stores a private copy of data under name.
func (m *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	key, err := m.lookup(ctx, name)
	if err != nil {
		return err
	}
	owned := slices.Clone(data)
	if owned == nil {
		owned = []byte{}
	}

	m.mu.Lock()
	m.blobs[key] = owned
	m.mu.Unlock()
	return nil
}

// Delete drops name if present.
func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	key, err := m.lookup(ctx, name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.blobs, key)
	m.mu.Unlock()
	return nil
}

// List returns the sorted names that start with prefix.
func (m *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix = strings.TrimLeft(prefix, "/")

	m.mu.RLock()
	names := make([]string, 0, len(m.blobs))
	for key := range m.blobs {
		if strings.HasPrefix(key, prefix) {
			names = append(names, key)
		}
	}
	m.mu.RUnlock()

	slices.Sort(names)
	return names, nil
}

// memoryBlob is an immutable snapshot of one blob.
type memoryBlob []byte

func (b memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b memoryBlob) Size() int64 { return int64(len(b)) }

func (b memoryBlob) Close() error { return nil }

// Bytes returns the snapshot without copying.
func (b memoryBlob) Bytes() ([]byte, error) { return b, nil }
