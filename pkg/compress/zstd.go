// pkg/compress/zstd.go
package compress

import (
	"github.com/klauspost/compress/zstd"
)

// zstdCodec Zstd 压缩实现
type zstdCodec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// newZstdCodec 创建 Zstd 编解码器
func newZstdCodec() (*zstdCodec, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, err
	}

	return &zstdCodec{
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Encode 使用 Zstd 压缩数据
func (c *zstdCodec) Encode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	return c.encoder.EncodeAll(src, nil), nil
}

// Decode 使用 Zstd 解压数据
// 空载荷统一返回非 nil 空切片，保证往返后与原输入相等
func (c *zstdCodec) Decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst, err := c.decoder.DecodeAll(src, nil)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		dst = []byte{}
	}
	return dst, nil
}

// Name 返回压缩算法名称
func (c *zstdCodec) Name() string {
	return string(TypeZstd)
}
