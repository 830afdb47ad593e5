// pkg/cache/lru/lru.go
package lru

import (
	"container/list"
	"sync"
	"time"
)

// Cache 带容量上限的 LRU 缓存
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	SetWithTTL(key K, value V, ttl time.Duration)
	Delete(key K)
	Keys() []K
	Len() int
	Clear()
	Close() error
}

// Config LRU 配置
type Config struct {
	// MaxSize 最大容量
	MaxSize int
	// DefaultTTL 默认过期时间，零值表示不过期
	DefaultTTL time.Duration
	// CleanupInterval 过期清理间隔
	CleanupInterval time.Duration
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		MaxSize:         10000,
		CleanupInterval: time.Minute,
	}
}

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time // 零值表示不过期
}

type lruCache[K comparable, V any] struct {
	mu sync.Mutex

	maxSize    int
	defaultTTL time.Duration

	ll    *list.List
	items map[K]*list.Element

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New 创建 LRU 缓存
func New[K comparable, V any](cfg *Config) Cache[K, V] {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultConfig().MaxSize
	}

	c := &lruCache[K, V]{
		maxSize:    cfg.MaxSize,
		defaultTTL: cfg.DefaultTTL,
		ll:         list.New(),
		items:      make(map[K]*list.Element),
		stopCh:     make(chan struct{}),
	}

	if cfg.DefaultTTL > 0 && cfg.CleanupInterval > 0 {
		go c.cleanupLoop(cfg.CleanupInterval)
	}
	return c
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	ent := el.Value.(*entry[K, V])
	if !ent.expiresAt.IsZero() && time.Now().After(ent.expiresAt) {
		c.removeElement(el)
		var zero V
		return zero, false
	}

	c.ll.MoveToFront(el)
	return ent.value, true
}

func (c *lruCache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

func (c *lruCache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry[K, V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = el

	if c.ll.Len() > c.maxSize {
		c.removeElement(c.ll.Back())
	}
}

func (c *lruCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Keys 返回当前全部未过期的键，顺序不定
func (c *lruCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	keys := make([]K, 0, len(c.items))
	for k, el := range c.items {
		ent := el.Value.(*entry[K, V])
		if !ent.expiresAt.IsZero() && now.After(ent.expiresAt) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func (c *lruCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *lruCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.items = make(map[K]*list.Element)
}

func (c *lruCache[K, V]) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	return nil
}

// removeElement 持锁调用
func (c *lruCache[K, V]) removeElement(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry[K, V]).key)
}

func (c *lruCache[K, V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *lruCache[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.ll.Back(); el != nil; {
		prev := el.Prev()
		ent := el.Value.(*entry[K, V])
		if !ent.expiresAt.IsZero() && now.After(ent.expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}
