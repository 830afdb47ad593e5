// pkg/content/content_test.go
package content

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesHandle(t *testing.T) {
	data := []byte("0123456789")
	h := NewBytes(data)

	assert.Equal(t, uint64(10), h.Size())

	t.Run("open reads all", func(t *testing.T) {
		r, err := h.Open()
		require.NoError(t, err)
		defer r.Close()

		all, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, data, all)
	})

	t.Run("read range", func(t *testing.T) {
		got, err := h.ReadRange(3, 4)
		require.NoError(t, err)
		assert.Equal(t, []byte("3456"), got)
	})

	t.Run("range out of bounds", func(t *testing.T) {
		_, err := h.ReadRange(8, 4)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestFileHandle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	data := bytes.Repeat([]byte("abcdef"), 100)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	h, err := NewFile(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(len(data)), h.Size())
	assert.Equal(t, path, h.Path())

	t.Run("open reads all", func(t *testing.T) {
		r, err := h.Open()
		require.NoError(t, err)
		defer r.Close()

		all, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, data, all)
	})

	t.Run("read range", func(t *testing.T) {
		got, err := h.ReadRange(0, 6)
		require.NoError(t, err)
		assert.Equal(t, []byte("abcdef"), got)

		tail, err := h.ReadRange(uint64(len(data))-6, 6)
		require.NoError(t, err)
		assert.Equal(t, []byte("abcdef"), tail)
	})

	t.Run("range out of bounds", func(t *testing.T) {
		_, err := h.ReadRange(uint64(len(data)), 1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("missing file is io error", func(t *testing.T) {
		_, err := NewFile(filepath.Join(dir, "missing.bin"))
		assert.True(t, errors.Is(err, ErrIO))
	})

	t.Run("directory is io error", func(t *testing.T) {
		_, err := NewFile(dir)
		assert.True(t, errors.Is(err, ErrIO))
	})

	t.Run("read after removal is io error", func(t *testing.T) {
		gone := filepath.Join(dir, "gone.bin")
		require.NoError(t, os.WriteFile(gone, data, 0o644))
		gh, err := NewFile(gone)
		require.NoError(t, err)
		require.NoError(t, os.Remove(gone))

		_, err = gh.ReadRange(0, 6)
		assert.True(t, errors.Is(err, ErrIO))
	})
}

func TestReaderAtHandle(t *testing.T) {
	data := []byte("hello reader at handle")
	h := NewReaderAt(bytes.NewReader(data), uint64(len(data)))

	assert.Equal(t, uint64(len(data)), h.Size())

	r, err := h.Open()
	require.NoError(t, err)
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, all)

	got, err := h.ReadRange(6, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte("reader"), got)

	_, err = h.ReadRange(uint64(len(data))-1, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// TestReaderAtHandle_DeclaredSizeTooLarge 声明大小超过实际可读大小时
// 区间读取必须报错，而不是返回补零的缓冲区
func TestReaderAtHandle_DeclaredSizeTooLarge(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 100)
	h := NewReaderAt(bytes.NewReader(data), 200)

	// 完全落在真实区域内的读取照常成功
	got, err := h.ReadRange(0, 100)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// 跨过真实末尾的读取
	_, err = h.ReadRange(90, 40)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	// 完全落在幻影区域的读取
	_, err = h.ReadRange(150, 40)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
