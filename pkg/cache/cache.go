// pkg/cache/cache.go
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/lk2023060901/xintegrity/pkg/content"
	"github.com/lk2023060901/xintegrity/pkg/fingerprint"
	"github.com/lk2023060901/xintegrity/pkg/logger"
	"github.com/lk2023060901/xintegrity/pkg/metrics"
	"github.com/lk2023060901/xintegrity/pkg/metrics/sliding"
	"github.com/lk2023060901/xintegrity/pkg/strategy"
)

// DefaultBatchConcurrency 批量抽取的默认并发上限
const DefaultBatchConcurrency = 10

// Cache 变更检测缓存
// 内容键 → 最近一次的快速校验和，用于跳过未变化输入的重复处理
//
// 同一个键的 IsDirty/MarkClean 读写对是临界区，内部用按键互斥锁
// 保护；不同键之间没有任何顺序保证
type Cache struct {
	store       Store
	gen         *fingerprint.Generator
	log         logger.Logger
	metrics     *metrics.Metrics
	compression string
	concurrency int
	window      *sliding.Window
	locks       keyLocks
	now         func() time.Time
}

// Option 缓存配置选项
type Option func(*Cache)

// WithStore 指定持久化后端
func WithStore(s Store) Option {
	return func(c *Cache) {
		c.store = s
	}
}

// WithGenerator 指定指纹生成器
func WithGenerator(g *fingerprint.Generator) Option {
	return func(c *Cache) {
		c.gen = g
	}
}

// WithLogger 注入日志，默认 Noop
func WithLogger(l logger.Logger) Option {
	return func(c *Cache) {
		c.log = l
	}
}

// WithMetrics 注入监控指标
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithCompression 指定快照压缩算法
func WithCompression(name string) Option {
	return func(c *Cache) {
		c.compression = name
	}
}

// WithBatchConcurrency 指定批量抽取的并发上限
func WithBatchConcurrency(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithWindow 注入滑动窗口统计器，观测近期跳过率
func WithWindow(w *sliding.Window) Option {
	return func(c *Cache) {
		c.window = w
	}
}

// New 创建变更检测缓存
// 默认内存后端、Noop 日志、快照不压缩
func New(opts ...Option) *Cache {
	c := &Cache{
		store:       NewMemoryStore(),
		gen:         fingerprint.New(),
		log:         logger.NewNoop(),
		compression: "none",
		concurrency: DefaultBatchConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsDirty 判断内容是否需要重新处理
// 条目不存在，或当前指纹校验和与存储值不同时为 true
func (c *Cache) IsDirty(ctx context.Context, key string, h content.Handle) (bool, error) {
	c.locks.lock(key)
	defer c.locks.unlock(key)

	return c.isDirtyLocked(ctx, key, h)
}

// MarkClean 重新计算校验和并连同时间戳一起存储
func (c *Cache) MarkClean(ctx context.Context, key string, h content.Handle) error {
	c.locks.lock(key)
	defer c.locks.unlock(key)

	return c.markCleanLocked(ctx, key, h)
}

// Invalidate 无条件移除条目
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if err := c.store.Delete(ctx, keys...); err != nil {
		return err
	}
	c.metrics.AddCacheInvalidations(len(keys))
	return nil
}

// isDirtyLocked 持锁版本的脏检查
func (c *Cache) isDirtyLocked(ctx context.Context, key string, h content.Handle) (bool, error) {
	fp, err := c.gen.Fingerprint(h, strategy.UseCaseCache)
	if err != nil {
		return false, err
	}

	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return entry.Checksum != fp.Checksum, nil
}

// markCleanLocked 持锁版本的标记干净
func (c *Cache) markCleanLocked(ctx context.Context, key string, h content.Handle) error {
	fp, err := c.gen.Fingerprint(h, strategy.UseCaseCache)
	if err != nil {
		return err
	}

	return c.store.Set(ctx, Entry{
		Key:      key,
		Checksum: fp.Checksum,
		LastSeen: c.now(),
	})
}

// keyLocks 按键互斥锁
// 键集合与缓存条目同生命周期，锁不回收
type keyLocks struct {
	locks sync.Map // string → *sync.Mutex
}

func (k *keyLocks) lock(key string) {
	mu, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (k *keyLocks) unlock(key string) {
	mu, ok := k.locks.Load(key)
	if ok {
		mu.(*sync.Mutex).Unlock()
	}
}
