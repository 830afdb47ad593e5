// pkg/content/readerat.go
package content

import (
	"io"

	"github.com/cockroachdb/errors"
)

// 确保 ReaderAtHandle 实现了 Handle 接口
var _ Handle = (*ReaderAtHandle)(nil)

// ReaderAtHandle 包装任意 io.ReaderAt 的内容句柄
// 适用于大小已知但内容不在本地文件系统上的资源，
// 例如对象存储的分段读取适配器
type ReaderAtHandle struct {
	r    io.ReaderAt
	size uint64
}

// NewReaderAt 创建 ReaderAt 句柄，size 必须是资源的真实总大小
func NewReaderAt(r io.ReaderAt, size uint64) *ReaderAtHandle {
	return &ReaderAtHandle{r: r, size: size}
}

// Size 返回内容总大小
func (h *ReaderAtHandle) Size() uint64 {
	return h.size
}

// Open 打开顺序读取器
func (h *ReaderAtHandle) Open() (io.ReadCloser, error) {
	return io.NopCloser(io.NewSectionReader(h.r, 0, int64(h.size))), nil
}

// ReadRange 读取指定区间
func (h *ReaderAtHandle) ReadRange(off, n uint64) ([]byte, error) {
	if off+n > h.size || off+n < off {
		return nil, errors.Wrapf(ErrOutOfRange, "range [%d, %d) of %d bytes", off, off+n, h.size)
	}

	buf := make([]byte, n)
	read, err := h.r.ReadAt(buf, int64(off))
	if err != nil && !(err == io.EOF && uint64(read) == n) {
		// 声明大小超过实际可读大小时必须报错，
		// 不能把补零的缓冲区当作读取结果返回
		if err == io.EOF {
			return nil, errors.Wrapf(ErrSizeMismatch, "read %d of %d bytes at %d, declared size %d", read, n, off, h.size)
		}
		return nil, errors.Mark(errors.Wrapf(err, "read at %d", off), ErrIO)
	}
	return buf, nil
}
