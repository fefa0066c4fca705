package mmap

import (
	"errors"
	"io"
	"math"
	"os"
	"sync"
)

var (
	// ErrClosed is returned by reads on a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for files whose size does not fit an int.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrInvalidOffset is returned for a negative read offset.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)

// AccessPattern tells the kernel how a mapping will be read.
type AccessPattern int

const (
	AccessDefault    AccessPattern = iota // no advice
	AccessSequential                      // front-to-back scan, aggressive readahead
	AccessRandom                          // point reads, no readahead
	AccessWillNeed                        // prefetch now
)

// Mapping is a read-only view of a whole file.
//
// Reads hold a shared lock so Close cannot unmap pages under a concurrent
// ReadAt.
type Mapping struct {
	mu    sync.RWMutex
	data  []byte
	size  int
	open  bool
	unmap func([]byte) error
}

// Open maps the file at path. Empty files yield a mapping with no data.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() < 0 || fi.Size() > math.MaxInt {
		return nil, ErrInvalidSize
	}

	m := &Mapping{size: int(fi.Size()), open: true}
	if m.size == 0 {
		return m, nil
	}
	if m.data, m.unmap, err = osMap(f, m.size); err != nil {
		return nil, err
	}
	return m, nil
}

// Close releases the mapping. Calling it again is a no-op.
func (m *Mapping) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return nil
	}
	m.open = false
	data := m.data
	m.data = nil
	if m.unmap != nil && data != nil {
		return m.unmap(data)
	}
	return nil
}

// Bytes returns the file contents, or nil once closed. The slice must not be
// used after Close.
func (m *Mapping) Bytes() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data
}

// Size returns the file size captured at Open.
func (m *Mapping) Size() int {
	return m.size
}

// Advise passes an access hint to the kernel.
func (m *Mapping) Advise(pattern AccessPattern) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.open {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case !m.open:
		return 0, ErrClosed
	case off < 0:
		return 0, ErrInvalidOffset
	case off >= int64(len(m.data)):
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
