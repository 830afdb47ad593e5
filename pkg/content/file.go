// pkg/content/file.go
package content

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// 确保 FileHandle 实现了 Handle 接口
var _ Handle = (*FileHandle)(nil)

// FileHandle 基于文件路径的内容句柄
// 构造时 stat 一次确定大小，之后的读取按需打开文件，
// 区间读通过 ReadAt 完成，不会把整个文件装入内存
type FileHandle struct {
	path string
	size uint64
}

// NewFile 创建文件句柄
// stat 失败返回带 ErrIO 标记的错误
func NewFile(path string) (*FileHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "stat %s", path), ErrIO)
	}
	if info.IsDir() {
		return nil, errors.Mark(errors.Newf("%s is a directory", path), ErrIO)
	}
	return &FileHandle{path: path, size: uint64(info.Size())}, nil
}

// Path 返回文件路径
func (h *FileHandle) Path() string {
	return h.path
}

// Size 返回内容总大小
func (h *FileHandle) Size() uint64 {
	return h.size
}

// Open 打开顺序读取器
func (h *FileHandle) Open() (io.ReadCloser, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "open %s", h.path), ErrIO)
	}
	return f, nil
}

// ReadRange 读取指定区间
func (h *FileHandle) ReadRange(off, n uint64) ([]byte, error) {
	if off+n > h.size || off+n < off {
		return nil, errors.Wrapf(ErrOutOfRange, "range [%d, %d) of %d bytes", off, off+n, h.size)
	}

	f, err := os.Open(h.path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "open %s", h.path), ErrIO)
	}
	defer f.Close()

	buf := make([]byte, n)
	if _, err := f.ReadAt(buf, int64(off)); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read %s at %d", h.path, off), ErrIO)
	}
	return buf, nil
}
