// pkg/cache/bounded.go
package cache

import (
	"context"

	"github.com/lk2023060901/xintegrity/pkg/cache/lru"
)

// boundedStore 带容量上限的内存后端
// 超出上限时按 LRU 淘汰最久未访问的条目；被淘汰的键在下一次
// 脏检查时表现为"条目不存在"，即重新视为脏，行为上是安全的
type boundedStore struct {
	lru lru.Cache[string, Entry]
}

var _ Store = (*boundedStore)(nil)

// NewBoundedStore 创建带容量上限的内存后端
// 适合键空间无上界的长期运行进程，防止条目无限累积
func NewBoundedStore(maxEntries int) Store {
	return &boundedStore{
		lru: lru.New[string, Entry](&lru.Config{MaxSize: maxEntries}),
	}
}

func (s *boundedStore) Get(_ context.Context, key string) (Entry, bool, error) {
	e, ok := s.lru.Get(key)
	return e, ok, nil
}

func (s *boundedStore) Set(_ context.Context, e Entry) error {
	s.lru.Set(e.Key, e)
	return nil
}

func (s *boundedStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.lru.Delete(k)
	}
	return nil
}

func (s *boundedStore) Keys(_ context.Context) ([]string, error) {
	return s.lru.Keys(), nil
}

func (s *boundedStore) Clear(_ context.Context) error {
	s.lru.Clear()
	return nil
}
