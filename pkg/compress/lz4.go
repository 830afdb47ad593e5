// pkg/compress/lz4.go
package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec LZ4 压缩实现
// 采用帧格式，解压无需预知原始长度
type lz4Codec struct{}

// Encode 使用 LZ4 压缩数据
func (c *lz4Codec) Encode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode 使用 LZ4 解压数据
func (c *lz4Codec) Decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}

	r := lz4.NewReader(bytes.NewReader(src))
	return io.ReadAll(r)
}

// Name 返回压缩算法名称
func (c *lz4Codec) Name() string {
	return string(TypeLZ4)
}
