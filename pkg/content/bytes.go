// pkg/content/bytes.go
package content

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
)

// 确保 BytesHandle 实现了 Handle 接口
var _ Handle = (*BytesHandle)(nil)

// BytesHandle 完全物化在内存中的字节内容
type BytesHandle struct {
	data []byte
}

// NewBytes 创建内存字节句柄
func NewBytes(data []byte) *BytesHandle {
	return &BytesHandle{data: data}
}

// Size 返回内容总大小
func (h *BytesHandle) Size() uint64 {
	return uint64(len(h.data))
}

// Open 打开顺序读取器
func (h *BytesHandle) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(h.data)), nil
}

// ReadRange 读取指定区间
func (h *BytesHandle) ReadRange(off, n uint64) ([]byte, error) {
	if off+n > uint64(len(h.data)) || off+n < off {
		return nil, errors.Wrapf(ErrOutOfRange, "range [%d, %d) of %d bytes", off, off+n, len(h.data))
	}
	return h.data[off : off+n], nil
}
