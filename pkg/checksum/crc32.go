// pkg/checksum/crc32.go
package checksum

import (
	"hash/crc32"
	"io"
)

// crc32Hasher CRC32 校验实现 (IEEE 多项式)
type crc32Hasher struct {
	table *crc32.Table
	name  Type
}

// newCRC32Hasher 创建 CRC32 校验器
func newCRC32Hasher() *crc32Hasher {
	return &crc32Hasher{
		table: crc32.IEEETable,
		name:  TypeCRC32,
	}
}

// newCRC32CHasher 创建 CRC32C 校验器
// CRC32C 在现代 CPU 上有硬件加速支持 (SSE4.2)
func newCRC32CHasher() *crc32Hasher {
	return &crc32Hasher{
		table: crc32.MakeTable(crc32.Castagnoli),
		name:  TypeCRC32C,
	}
}

// Sum 计算 CRC32 校验和
func (h *crc32Hasher) Sum(data []byte) uint32 {
	if data == nil {
		return 0
	}
	return crc32.Checksum(data, h.table)
}

// SumReader 流式计算 CRC32 校验和
func (h *crc32Hasher) SumReader(r io.Reader) (uint32, uint64, error) {
	hash := crc32.New(h.table)
	n, err := io.Copy(hash, r)
	if err != nil {
		return 0, uint64(n), err
	}
	return hash.Sum32(), uint64(n), nil
}

// Verify 验证 CRC32 校验和
func (h *crc32Hasher) Verify(data []byte, expected uint32) bool {
	return h.Sum(data) == expected
}

// Name 返回校验算法名称
func (h *crc32Hasher) Name() string {
	return string(h.name)
}
