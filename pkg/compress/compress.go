// pkg/compress/compress.go
package compress

import (
	"fmt"
	"sync"
)

// Codec 压缩编解码器接口
// 用于缓存快照载荷的压缩存储
type Codec interface {
	// Encode 压缩数据
	Encode(src []byte) ([]byte, error)

	// Decode 解压数据
	Decode(src []byte) ([]byte, error)

	// Name 返回压缩算法名称
	Name() string
}

// Factory 编解码器工厂函数类型
type Factory func() (Codec, error)

// Type 压缩算法类型
type Type string

const (
	// TypeNone 不压缩
	TypeNone Type = "none"
	// TypeSnappy Snappy 压缩算法
	TypeSnappy Type = "snappy"
	// TypeZstd Zstd 压缩算法
	TypeZstd Type = "zstd"
	// TypeLZ4 LZ4 压缩算法（帧格式）
	TypeLZ4 Type = "lz4"
)

var (
	mu        sync.RWMutex
	factories = make(map[Type]Factory)
)

func init() {
	// 注册默认支持的压缩算法
	Register(TypeNone, func() (Codec, error) {
		return &noneCodec{}, nil
	})
	Register(TypeSnappy, func() (Codec, error) {
		return &snappyCodec{}, nil
	})
	Register(TypeZstd, func() (Codec, error) {
		return newZstdCodec()
	})
	Register(TypeLZ4, func() (Codec, error) {
		return &lz4Codec{}, nil
	})
}

// Register 注册编解码器工厂
func Register(t Type, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[t] = factory
}

// New 创建编解码器
func New(t Type) (Codec, error) {
	mu.RLock()
	factory, ok := factories[t]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported compression type: %s", t)
	}
	return factory()
}

// MustNew 创建编解码器，失败时 panic
func MustNew(t Type) Codec {
	c, err := New(t)
	if err != nil {
		panic(err)
	}
	return c
}

// List 返回所有已注册的压缩算法类型
func List() []Type {
	mu.RLock()
	defer mu.RUnlock()

	types := make([]Type, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}
	return types
}

// noneCodec 不压缩实现
type noneCodec struct{}

// Encode 返回数据副本
func (c *noneCodec) Encode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, nil
}

// Decode 返回数据副本
func (c *noneCodec) Decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, nil
}

// Name 返回压缩算法名称
func (c *noneCodec) Name() string {
	return string(TypeNone)
}
