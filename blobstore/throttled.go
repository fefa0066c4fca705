package blobstore

import (
	"context"

	"github.com/hupe1980/funi/resource"
)

// ThrottledStore charges every read and write of the wrapped store against
// the IO budget of a resource.Controller.
type ThrottledStore struct {
	inner BlobStore
	rc    *resource.Controller
}

// NewThrottledStore wraps inner. A nil controller disables throttling.
func NewThrottledStore(inner BlobStore, rc *resource.Controller) *ThrottledStore {
	return &ThrottledStore{inner: inner, rc: rc}
}

// Open opens a throttled blob.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{inner: b, rc: s.rc}, nil
}

// Put waits for len(data) bytes of budget, then writes.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.rc.WaitIO(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete removes a blob.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List lists the wrapped store.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// throttledBlob hides any Mappable implementation of the inner blob, so
// ReadAll goes through ReadAt and is charged.
type throttledBlob struct {
	inner Blob
	rc    *resource.Controller
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	want := len(p)
	if rest := b.inner.Size() - off; rest >= 0 && int64(want) > rest {
		want = int(rest)
	}
	if err := b.rc.WaitIO(ctx, want); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(ctx, p, off)
}

func (b *throttledBlob) Size() int64 {
	return b.inner.Size()
}

func (b *throttledBlob) Close() error {
	return b.inner.Close()
}
