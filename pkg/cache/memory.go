// pkg/cache/memory.go
package cache

import (
	"context"
	"sync"
)

// 确保 memoryStore 实现了 Store 接口
var _ Store = (*memoryStore)(nil)

// memoryStore 进程内存后端
// 显式构造、显式传入，不存在进程级单例
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore 创建内存后端
func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]Entry),
	}
}

// Get 读取条目
func (s *memoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return e, ok, nil
}

// Set 写入条目
func (s *memoryStore) Set(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[e.Key] = e
	return nil
}

// Delete 删除条目
func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

// Keys 列出全部键
func (s *memoryStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

// Clear 清空全部条目
func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
	return nil
}
