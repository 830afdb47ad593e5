// pkg/strategy/strategy.go
package strategy

import "fmt"

// Kind 采样策略种类
// 封闭枚举，所有分支处必须穷尽匹配，新增策略是编译期可检查的变更
type Kind uint8

const (
	// KindDirect 完整读取全部内容，恰好一次
	KindDirect Kind = iota
	// KindHeadTail 仅读取头尾各一块的启发式采样
	// 能检出截断、头尾损坏和大小不符，检不出未触及的中间区域损坏
	KindHeadTail
	// KindSkip 不做任何校验
	KindSkip
)

const (
	// DirectThreshold 切换到头尾采样的大小阈值 (1 GiB)
	// 低于该值保证完整读取，达到或超过则保持内存有界
	DirectThreshold uint64 = 1 << 30

	// DefaultChunkSize 头尾采样的默认块大小 (64 MiB)
	DefaultChunkSize uint64 = 64 << 20

	// CacheChunkSize 缓存场景的小块大小 (1 MiB)
	// 缓存键容忍罕见的漏报，用更小的块换取延迟
	CacheChunkSize uint64 = 1 << 20
)

// Strategy 校验策略
// 值类型，可直接用 == 比较；Chunk 仅在 KindHeadTail 时有意义
type Strategy struct {
	Kind  Kind
	Chunk uint64
}

// Direct 完整读取策略
func Direct() Strategy {
	return Strategy{Kind: KindDirect}
}

// HeadTail 头尾采样策略
func HeadTail(chunk uint64) Strategy {
	return Strategy{Kind: KindHeadTail, Chunk: chunk}
}

// Skip 跳过校验策略
func Skip() Strategy {
	return Strategy{Kind: KindSkip}
}

// Name 返回策略名称，用于对外报告
func (s Strategy) Name() string {
	switch s.Kind {
	case KindDirect:
		return "direct"
	case KindHeadTail:
		return "headtail"
	case KindSkip:
		return "skip"
	default:
		return fmt.Sprintf("unknown(%d)", s.Kind)
	}
}

// String 实现 fmt.Stringer
func (s Strategy) String() string {
	if s.Kind == KindHeadTail {
		return fmt.Sprintf("headtail(chunk=%d)", s.Chunk)
	}
	return s.Name()
}

// UseCase 校验的使用场景
type UseCase uint8

const (
	// UseCaseUpload 上传制品校验
	UseCaseUpload UseCase = iota
	// UseCaseCache 变更检测缓存键
	UseCaseCache
	// UseCaseIntegrity 完整性校验
	UseCaseIntegrity
)

// Name 返回场景名称
func (u UseCase) Name() string {
	switch u {
	case UseCaseUpload:
		return "upload"
	case UseCaseCache:
		return "cache"
	case UseCaseIntegrity:
		return "integrity"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(u))
	}
}

// Policy 策略选择参数
// 零值字段回落到包级默认常量，可整体从配置装配
type Policy struct {
	// DirectThreshold 切换头尾采样的大小阈值
	DirectThreshold uint64
	// HeadTailChunk 头尾采样块大小
	HeadTailChunk uint64
	// CacheChunk 缓存场景的块大小
	CacheChunk uint64
}

// DefaultPolicy 返回默认策略参数
func DefaultPolicy() Policy {
	return Policy{
		DirectThreshold: DirectThreshold,
		HeadTailChunk:   DefaultChunkSize,
		CacheChunk:      CacheChunkSize,
	}
}

// Choose 根据内容大小与使用场景选择校验策略
// 纯函数，无失败路径；size 为 0 时退化为 Direct，平凡正确
//
// 策略表：
//   - Cache: 恒为 HeadTail(小块)，延迟优先
//   - Upload / Integrity: 低于阈值用 Direct，达到阈值用 HeadTail，
//     两者共用同一阈值，超大制品的完整性检查必须保持内存有界
func (p Policy) Choose(size uint64, uc UseCase) Strategy {
	if p.DirectThreshold == 0 {
		p.DirectThreshold = DirectThreshold
	}
	if p.HeadTailChunk == 0 {
		p.HeadTailChunk = DefaultChunkSize
	}
	if p.CacheChunk == 0 {
		p.CacheChunk = CacheChunkSize
	}

	if uc == UseCaseCache {
		return HeadTail(p.CacheChunk)
	}

	if size < p.DirectThreshold {
		return Direct()
	}
	return HeadTail(p.HeadTailChunk)
}

// Choose 用默认策略参数选择校验策略
func Choose(size uint64, uc UseCase) Strategy {
	return DefaultPolicy().Choose(size, uc)
}
