// pkg/checksum/xxhash.go
package checksum

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// xxhashHasher XXHash 校验实现
// XXHash 是一种极快的非加密哈希算法
type xxhashHasher struct{}

// newXXHashHasher 创建 XXHash 校验器
func newXXHashHasher() *xxhashHasher {
	return &xxhashHasher{}
}

// Sum 计算 XXHash 校验和（取 XXHash64 低 32 位）
// nil 与空切片必须产出同一个值，与流式计算保持一致
func (h *xxhashHasher) Sum(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

// SumReader 流式计算 XXHash 校验和
func (h *xxhashHasher) SumReader(r io.Reader) (uint32, uint64, error) {
	digest := xxhash.New()
	n, err := io.Copy(digest, r)
	if err != nil {
		return 0, uint64(n), err
	}
	return uint32(digest.Sum64()), uint64(n), nil
}

// Verify 验证 XXHash 校验和
func (h *xxhashHasher) Verify(data []byte, expected uint32) bool {
	return h.Sum(data) == expected
}

// Name 返回校验算法名称
func (h *xxhashHasher) Name() string {
	return string(TypeXXHash)
}
