// pkg/checksum/hasher.go
package checksum

import (
	"fmt"
	"io"
	"sync"
)

// Hasher 快速校验和计算器接口
// 产出 32 位非加密校验和，仅保证速度和高概率的变更检测，
// 不具备任何安全性质
type Hasher interface {
	// Sum 计算数据的校验和
	Sum(data []byte) uint32

	// SumReader 流式计算校验和，返回校验和与实际读取的字节数
	// 读取过程中内存占用为常量，与输入大小无关
	SumReader(r io.Reader) (uint32, uint64, error)

	// Verify 验证数据的校验和
	Verify(data []byte, expected uint32) bool

	// Name 返回校验算法名称
	Name() string
}

// HasherFactory 校验器工厂函数类型
type HasherFactory func() (Hasher, error)

// Type 校验算法类型
type Type string

const (
	// TypeCRC32 CRC32 校验算法 (IEEE 多项式)
	TypeCRC32 Type = "crc32"
	// TypeCRC32C CRC32C 校验算法 (Castagnoli 多项式，硬件加速)
	TypeCRC32C Type = "crc32c"
	// TypeXXHash XXHash 校验算法（取 XXHash64 低 32 位）
	TypeXXHash Type = "xxhash"
)

var (
	hasherMu        sync.RWMutex
	hasherFactories = make(map[Type]HasherFactory)
)

func init() {
	// 注册默认支持的校验算法
	RegisterHasher(TypeCRC32, func() (Hasher, error) {
		return newCRC32Hasher(), nil
	})
	RegisterHasher(TypeCRC32C, func() (Hasher, error) {
		return newCRC32CHasher(), nil
	})
	RegisterHasher(TypeXXHash, func() (Hasher, error) {
		return newXXHashHasher(), nil
	})
}

// RegisterHasher 注册校验器工厂
func RegisterHasher(t Type, factory HasherFactory) {
	hasherMu.Lock()
	defer hasherMu.Unlock()
	hasherFactories[t] = factory
}

// UnregisterHasher 注销校验器工厂
func UnregisterHasher(t Type) {
	hasherMu.Lock()
	defer hasherMu.Unlock()
	delete(hasherFactories, t)
}

// NewHasher 创建校验器
func NewHasher(t Type) (Hasher, error) {
	hasherMu.RLock()
	factory, ok := hasherFactories[t]
	hasherMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported checksum type: %s", t)
	}
	return factory()
}

// MustNewHasher 创建校验器，失败时 panic
func MustNewHasher(t Type) Hasher {
	h, err := NewHasher(t)
	if err != nil {
		panic(err)
	}
	return h
}

// ListHashers 返回所有已注册的校验算法类型
func ListHashers() []Type {
	hasherMu.RLock()
	defer hasherMu.RUnlock()

	types := make([]Type, 0, len(hasherFactories))
	for t := range hasherFactories {
		types = append(types, t)
	}
	return types
}
