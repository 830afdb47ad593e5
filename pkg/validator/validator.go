// pkg/validator/validator.go
package validator

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/xintegrity/pkg/checksum"
	"github.com/lk2023060901/xintegrity/pkg/content"
	"github.com/lk2023060901/xintegrity/pkg/fingerprint"
	"github.com/lk2023060901/xintegrity/pkg/metrics"
	"github.com/lk2023060901/xintegrity/pkg/strategy"
)

// Expectation 调用方提供的期望值
// 三个字段都可以缺省；缺省的层不参与校验
type Expectation struct {
	// Checksum 期望的快速校验和
	Checksum *uint32
	// Digest 期望的加密摘要
	Digest []byte
	// Size 期望的内容大小
	Size *uint64
}

// Validator 分层校验器
//
// 状态机：Start → FastCheck → {FastFail | FastPass} → DigestCheck →
// {DigestFail | DigestPass}；快速校验失败时绝不计算加密摘要，
// 这是整个分层设计存在的意义
type Validator struct {
	gen      *fingerprint.Generator
	digester checksum.Digester
	useCase  strategy.UseCase
	metrics  *metrics.Metrics
}

// Option 校验器配置选项
type Option func(*Validator)

// WithGenerator 指定指纹生成器
func WithGenerator(g *fingerprint.Generator) Option {
	return func(v *Validator) {
		v.gen = g
	}
}

// WithDigester 指定加密摘要算法
func WithDigester(d checksum.Digester) Option {
	return func(v *Validator) {
		v.digester = d
	}
}

// WithUseCase 指定快速校验的使用场景
func WithUseCase(uc strategy.UseCase) Option {
	return func(v *Validator) {
		v.useCase = uc
	}
}

// WithMetrics 注入监控指标
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// New 创建分层校验器
// 默认 SHA-256 摘要、Integrity 场景
func New(opts ...Option) *Validator {
	v := &Validator{
		gen:      fingerprint.New(),
		digester: checksum.MustNewDigester(checksum.TypeSHA256),
		useCase:  strategy.UseCaseIntegrity,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate 对内容执行分层校验
//
// I/O 错误从任何状态直接中止并返回 error；
// 校验不匹配不是错误，以 Status 形式出现在报告里
func (v *Validator) Validate(ctx context.Context, h content.Handle, exp Expectation) (*Report, error) {
	start := time.Now()
	size := h.Size()

	// 期望大小可以在读任何字节之前检查
	if exp.Size != nil && *exp.Size != size {
		return v.finish(&Report{
			Status:   StatusInvalid,
			Outcome:  OutcomeSizeMismatch,
			Strategy: v.gen.Policy().Choose(size, v.useCase),
		}, start), nil
	}

	// FastCheck
	fp, err := v.gen.Fingerprint(h, v.useCase)
	if err != nil {
		// 指纹层把大小不符当参考信息，校验层把它当 FastFail
		if errors.Is(err, content.ErrSizeMismatch) {
			return v.finish(&Report{
				Status:         StatusInvalid,
				Outcome:        OutcomeSizeMismatch,
				Checksum:       fp.Checksum,
				Strategy:       fp.Strategy,
				BytesProcessed: bytesForStrategy(fp.Strategy, size),
			}, start), nil
		}
		return nil, err
	}

	report := &Report{
		Checksum:       fp.Checksum,
		Strategy:       fp.Strategy,
		BytesProcessed: bytesForStrategy(fp.Strategy, size),
	}

	if exp.Checksum != nil && *exp.Checksum != fp.Checksum {
		report.Status = StatusInvalid
		report.Outcome = OutcomeFastFail
		return v.finish(report, start), nil
	}

	// 没有加密摘要期望：快速通过但不构成安全断言
	if exp.Digest == nil {
		report.Status = StatusUnconfirmed
		report.Outcome = OutcomeFastPass
		return v.finish(report, start), nil
	}

	// DigestCheck：加密确认需要真实的全部字节，永远完整读取
	digest, err := v.computeDigest(h)
	if err != nil {
		return nil, err
	}
	report.Digest = digest
	report.BytesProcessed += size

	if checksum.ConstantTimeEqual(digest, exp.Digest) {
		report.Status = StatusValid
		report.Outcome = OutcomeDigestPass
	} else {
		report.Status = StatusInvalid
		report.Outcome = OutcomeDigestFail
	}
	return v.finish(report, start), nil
}

// computeDigest 完整读取内容并计算加密摘要
func (v *Validator) computeDigest(h content.Handle) ([]byte, error) {
	r, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	digest, _, err := v.digester.SumReader(r)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "digest stream"), content.ErrIO)
	}
	return digest, nil
}

// finish 填充耗时并上报指标
func (v *Validator) finish(r *Report, start time.Time) *Report {
	r.Elapsed = time.Since(start)
	v.metrics.ObserveValidation(r.Status.Name(), string(r.Outcome), r.Elapsed)
	return r
}

// bytesForStrategy 计算某策略对给定大小实际读取的字节数
func bytesForStrategy(st strategy.Strategy, size uint64) uint64 {
	switch st.Kind {
	case strategy.KindDirect:
		return size
	case strategy.KindHeadTail:
		return 2 * st.Chunk
	default:
		return 0
	}
}
