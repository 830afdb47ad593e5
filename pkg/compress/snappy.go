// pkg/compress/snappy.go
package compress

import (
	"github.com/golang/snappy"
)

// snappyCodec Snappy 块格式实现
// 压缩率不高但速度极快，适合快照这类低频读写的场景
type snappyCodec struct{}

// Encode 压缩数据
func (c *snappyCodec) Encode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	return snappy.Encode(nil, src), nil
}

// Decode 解压数据
// 空载荷统一返回非 nil 空切片，保证往返后与原输入相等
func (c *snappyCodec) Decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst, err := snappy.Decode(nil, src)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		dst = []byte{}
	}
	return dst, nil
}

// Name 返回压缩算法名称
func (c *snappyCodec) Name() string {
	return string(TypeSnappy)
}
