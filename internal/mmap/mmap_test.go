package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.bin")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestMapping_OpenReadClose(t *testing.T) {
	content := []byte("FUNI table payload")
	m, err := Open(writeFile(t, content))
	require.NoError(t, err)

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Bytes())
	require.NoError(t, m.Advise(AccessSequential))

	tests := []struct {
		name    string
		size    int
		off     int64
		want    string
		wantErr error
	}{
		{name: "inside", size: 5, off: 5, want: "table"},
		{name: "partial", size: 20, off: 11, want: "payload", wantErr: io.EOF},
		{name: "past end", size: 4, off: 100, wantErr: io.EOF},
		{name: "negative", size: 4, off: -1, wantErr: ErrInvalidOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.size)
			n, err := m.ReadAt(buf, tt.off)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMapping_EmptyFile(t *testing.T) {
	m, err := Open(writeFile(t, nil))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Nil(t, m.Bytes())
	require.NoError(t, m.Advise(AccessWillNeed))
}

func TestMapping_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
