// pkg/validator/report.go
package validator

import (
	"time"

	"github.com/lk2023060901/xintegrity/pkg/strategy"
)

// Status 校验结论
type Status uint8

const (
	// StatusValid 快速校验与加密摘要确认全部通过
	StatusValid Status = iota
	// StatusInvalid 任一层校验不通过
	StatusInvalid
	// StatusUnconfirmed 快速校验通过，但调用方没有提供加密摘要期望
	// 只是信息性指纹，不构成安全断言
	StatusUnconfirmed
)

// Name 返回结论名称
func (s Status) Name() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusUnconfirmed:
		return "unconfirmed"
	default:
		return "unknown"
	}
}

// Outcome 状态机的终止状态
type Outcome string

const (
	// OutcomeSizeMismatch 期望大小与实际不符，未读任何字节即终止
	OutcomeSizeMismatch Outcome = "size_mismatch"
	// OutcomeFastFail 快速校验不匹配，加密摘要未被计算
	OutcomeFastFail Outcome = "fast_fail"
	// OutcomeFastPass 快速校验通过且没有摘要期望
	OutcomeFastPass Outcome = "fast_pass"
	// OutcomeDigestFail 加密摘要不匹配
	OutcomeDigestFail Outcome = "digest_fail"
	// OutcomeDigestPass 加密摘要匹配
	OutcomeDigestPass Outcome = "digest_pass"
)

// Report 校验报告
// 不可变值对象；校验和/摘要不匹配是正常业务结果，
// 通过 Status 表达，永远不是 error
type Report struct {
	// Status 校验结论
	Status Status
	// Outcome 状态机终止状态
	Outcome Outcome
	// Checksum 实际计算出的快速校验和
	Checksum uint32
	// Digest 实际计算出的加密摘要，未进入摘要阶段时为 nil
	Digest []byte
	// Strategy 快速校验使用的策略
	Strategy strategy.Strategy
	// Elapsed 从进入状态机到终止的耗时
	Elapsed time.Duration
	// BytesProcessed 实际读取的字节数
	BytesProcessed uint64
}
