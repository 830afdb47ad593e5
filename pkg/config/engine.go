// pkg/config/engine.go
package config

import "time"

// EngineConfig 完整性引擎配置
// 字段全部可缺省，零值通过 MergeConfig 回落到 DefaultEngineConfig
type EngineConfig struct {
	// Checksum 快速校验算法: crc32 / crc32c / xxhash
	Checksum string `mapstructure:"checksum" validate:"omitempty,oneof=crc32 crc32c xxhash"`

	// Digest 加密摘要算法: sha256 / sha512_256
	Digest string `mapstructure:"digest" validate:"omitempty,oneof=sha256 sha512_256"`

	// DirectThreshold 切换头尾采样的大小阈值（字节）
	DirectThreshold uint64 `mapstructure:"direct_threshold" validate:"omitempty,min=1"`

	// HeadTailChunk 头尾采样块大小（字节）
	HeadTailChunk uint64 `mapstructure:"headtail_chunk" validate:"omitempty,min=1"`

	// CacheChunk 缓存场景的块大小（字节）
	CacheChunk uint64 `mapstructure:"cache_chunk" validate:"omitempty,min=1"`

	// BatchConcurrency 批量指纹计算的并发上限
	BatchConcurrency int `mapstructure:"batch_concurrency" validate:"omitempty,min=1,max=1024"`

	// Cache 变更检测缓存配置
	Cache CacheConfig `mapstructure:"cache"`
}

// CacheConfig 变更检测缓存配置
type CacheConfig struct {
	// Store 后端类型: memory / redis
	Store string `mapstructure:"store" validate:"omitempty,oneof=memory redis"`

	// Compression 快照压缩算法: none / snappy / zstd / lz4
	Compression string `mapstructure:"compression" validate:"omitempty,oneof=none snappy zstd lz4"`

	// Redis Redis 后端配置，Store 为 redis 时生效
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig Redis 后端连接配置
type RedisConfig struct {
	// Addr 连接地址 host:port
	Addr string `mapstructure:"addr"`

	// Password 密码
	Password string `mapstructure:"password"`

	// DB 库编号
	DB int `mapstructure:"db" validate:"omitempty,min=0,max=15"`

	// Namespace 键前缀，隔离多套缓存
	Namespace string `mapstructure:"namespace"`

	// DialTimeout 连接超时
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// DefaultEngineConfig 返回默认引擎配置
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Checksum:         "crc32c",
		Digest:           "sha256",
		DirectThreshold:  1 << 30,
		HeadTailChunk:    64 << 20,
		CacheChunk:       1 << 20,
		BatchConcurrency: 10,
		Cache: CacheConfig{
			Store:       "memory",
			Compression: "none",
			Redis: RedisConfig{
				Namespace:   "xintegrity",
				DialTimeout: 5 * time.Second,
			},
		},
	}
}

// LoadEngineConfig 加载、合并并验证引擎配置
func LoadEngineConfig(path, configType string) (*EngineConfig, error) {
	loader := NewLoader()
	if err := loader.LoadFile(path, configType); err != nil {
		return nil, err
	}

	var cfg EngineConfig
	if err := loader.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	merged, err := MergeConfig(DefaultEngineConfig(), &cfg)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
