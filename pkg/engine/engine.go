// pkg/engine/engine.go
package engine

import (
	"io"

	"github.com/lk2023060901/xintegrity/pkg/cache"
	"github.com/lk2023060901/xintegrity/pkg/checksum"
	"github.com/lk2023060901/xintegrity/pkg/config"
	"github.com/lk2023060901/xintegrity/pkg/fingerprint"
	"github.com/lk2023060901/xintegrity/pkg/logger"
	"github.com/lk2023060901/xintegrity/pkg/metrics"
	"github.com/lk2023060901/xintegrity/pkg/strategy"
	"github.com/lk2023060901/xintegrity/pkg/validator"
)

// Engine 按配置装配好的完整性引擎
// 配置文件里的算法名、阈值、块大小、并发上限在这里全部生效
type Engine struct {
	Generator *fingerprint.Generator
	Validator *validator.Validator
	Cache     *cache.Cache

	store cache.Store
}

// Option 装配选项，覆盖配置之外的运行时依赖
type Option func(*options)

type options struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

// WithLogger 注入日志
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithMetrics 注入监控指标
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// New 从配置装配引擎
// cfg 可以只填部分字段，缺省值回落到 DefaultEngineConfig
func New(cfg *config.EngineConfig, opts ...Option) (*Engine, error) {
	merged, err := config.MergeConfig(config.DefaultEngineConfig(), cfg)
	if err != nil {
		return nil, err
	}
	if err := config.NewValidator().Validate(merged); err != nil {
		return nil, err
	}

	o := &options{log: logger.NewNoop()}
	for _, opt := range opts {
		opt(o)
	}

	hasher, err := checksum.NewHasher(checksum.Type(merged.Checksum))
	if err != nil {
		return nil, err
	}
	digester, err := checksum.NewDigester(checksum.DigestType(merged.Digest))
	if err != nil {
		return nil, err
	}

	gen := fingerprint.New(
		fingerprint.WithHasher(hasher),
		fingerprint.WithConcurrency(merged.BatchConcurrency),
		fingerprint.WithPolicy(strategy.Policy{
			DirectThreshold: merged.DirectThreshold,
			HeadTailChunk:   merged.HeadTailChunk,
			CacheChunk:      merged.CacheChunk,
		}),
	)

	val := validator.New(
		validator.WithGenerator(gen),
		validator.WithDigester(digester),
		validator.WithMetrics(o.metrics),
	)

	store, err := buildStore(&merged.Cache)
	if err != nil {
		return nil, err
	}

	c := cache.New(
		cache.WithStore(store),
		cache.WithGenerator(gen),
		cache.WithLogger(o.log),
		cache.WithMetrics(o.metrics),
		cache.WithCompression(merged.Cache.Compression),
		cache.WithBatchConcurrency(merged.BatchConcurrency),
	)

	return &Engine{
		Generator: gen,
		Validator: val,
		Cache:     c,
		store:     store,
	}, nil
}

// buildStore 按配置创建缓存后端
func buildStore(cfg *config.CacheConfig) (cache.Store, error) {
	switch cfg.Store {
	case "redis":
		return cache.NewRedisStore(&cfg.Redis)
	default:
		return cache.NewMemoryStore(), nil
	}
}

// Close 释放持有外部连接的后端
func (e *Engine) Close() error {
	if closer, ok := e.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
