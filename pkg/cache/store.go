// pkg/cache/store.go
package cache

import "context"

// Store 缓存条目的持久化后端
// 引擎不做淘汰，条目存活到显式失效为止；淘汰策略是调用方的事
type Store interface {
	// Get 读取条目，第二个返回值表示是否存在
	Get(ctx context.Context, key string) (Entry, bool, error)

	// Set 写入条目（整体覆盖）
	Set(ctx context.Context, e Entry) error

	// Delete 删除条目，不存在的键静默忽略
	Delete(ctx context.Context, keys ...string) error

	// Keys 列出全部键
	Keys(ctx context.Context) ([]string, error)

	// Clear 清空全部条目
	Clear(ctx context.Context) error
}
