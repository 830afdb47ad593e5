// pkg/fingerprint/fingerprint.go
package fingerprint

import (
	"fmt"

	"github.com/lk2023060901/xintegrity/pkg/strategy"
)

// Fingerprint 内容指纹
// (校验和, 大小, 策略) 三元组，用作缓存/身份键，不是安全摘要
// 不可变值对象，由引擎返回给调用方
type Fingerprint struct {
	// Checksum 32 位快速校验和
	Checksum uint32
	// Size 内容总大小（字节）
	Size uint64
	// Strategy 产生该指纹时实际使用的策略
	// 头尾采样退化为完整读取时这里记录的是 Direct
	Strategy strategy.Strategy
}

// Equal 判断两个指纹是否相同
// 三个字段全部一致才视为内容未变化
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f == other
}

// String 实现 fmt.Stringer
func (f Fingerprint) String() string {
	return fmt.Sprintf("%08x/%d/%s", f.Checksum, f.Size, f.Strategy.Name())
}
