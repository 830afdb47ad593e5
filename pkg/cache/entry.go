// pkg/cache/entry.go
package cache

import "time"

// Entry 缓存条目
// 归缓存独占所有，只通过 MarkClean / Invalidate 变化，
// 调用方不直接构造；校验和与时间戳永远一起写入，不存在半更新状态
type Entry struct {
	// Key 内容键
	Key string `json:"key"`

	// Checksum 上次标记干净时的快速校验和
	Checksum uint32 `json:"checksum"`

	// LastSeen 上次标记干净的时间
	LastSeen time.Time `json:"last_seen"`
}
