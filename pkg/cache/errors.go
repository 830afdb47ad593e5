// pkg/cache/errors.go
package cache

import "errors"

var (
	// ErrNilExtractor 批量处理必须提供抽取函数
	ErrNilExtractor = errors.New("cache: extractor cannot be nil")

	// ErrSnapshotVersion 快照版本不被支持
	ErrSnapshotVersion = errors.New("cache: unsupported snapshot version")

	// ErrSnapshotCorrupt 快照数据损坏或格式不对
	ErrSnapshotCorrupt = errors.New("cache: snapshot corrupt")
)
