// pkg/metrics/sliding/window.go
package sliding

import (
	"sync"
	"time"
)

// bucket 时间桶
type bucket struct {
	skipped     int64 // 跳过数量（指纹未变化）
	extracted   int64 // 实际提取数量
	failed      int64 // 提取失败数量
	totalTime   float64
	timestamp   time.Time
	initialized bool
}

// Window 批量处理的滑动窗口统计器
// 用于观测近期的跳过率：长期运行的守护进程里，
// Prometheus 计数器只能给出累计值，窗口给出的是"最近一分钟"
type Window struct {
	mu sync.RWMutex

	size    time.Duration
	buckets []bucket
	current int

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWindow 创建滑动窗口统计器
// size 为统计窗口大小，count 为桶数量；零值使用 60s/60 桶
func NewWindow(size time.Duration, count int) *Window {
	if size <= 0 {
		size = 60 * time.Second
	}
	if count <= 0 {
		count = 60
	}

	w := &Window{
		size:    size,
		buckets: make([]bucket, count),
		stopCh:  make(chan struct{}),
	}

	now := time.Now()
	for i := range w.buckets {
		w.buckets[i].timestamp = now
	}

	go w.rotateLoop(size / time.Duration(count))
	return w
}

func (w *Window) rotateLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.rotate()
		case <-w.stopCh:
			return
		}
	}
}

func (w *Window) rotate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.current = (w.current + 1) % len(w.buckets)
	w.buckets[w.current] = bucket{timestamp: time.Now()}
}

// RecordSkip 记录一次跳过（内容未变化，复用缓存结果）
func (w *Window) RecordSkip() {
	w.mu.Lock()
	defer w.mu.Unlock()

	b := &w.buckets[w.current]
	b.skipped++
	b.initialized = true
}

// RecordExtract 记录一次实际提取
func (w *Window) RecordExtract(elapsed time.Duration, success bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b := &w.buckets[w.current]
	b.extracted++
	b.totalTime += elapsed.Seconds()
	b.initialized = true
	if !success {
		b.failed++
	}
}

// Stats 窗口内统计结果
type Stats struct {
	// Skipped 窗口内跳过数量
	Skipped int64 `json:"skipped"`
	// Extracted 窗口内实际提取数量
	Extracted int64 `json:"extracted"`
	// Failed 窗口内提取失败数量
	Failed int64 `json:"failed"`
	// SkipRate 跳过率 (0-100)
	SkipRate float64 `json:"skip_rate"`
	// AvgExtractTime 平均提取耗时（秒）
	AvgExtractTime float64 `json:"avg_extract_time"`
}

// GetStats 获取窗口内统计数据
func (w *Window) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var stats Stats
	var totalTime float64

	windowStart := time.Now().Add(-w.size)
	for _, b := range w.buckets {
		if b.timestamp.After(windowStart) && b.initialized {
			stats.Skipped += b.skipped
			stats.Extracted += b.extracted
			stats.Failed += b.failed
			totalTime += b.totalTime
		}
	}

	total := stats.Skipped + stats.Extracted
	if total > 0 {
		stats.SkipRate = float64(stats.Skipped) / float64(total) * 100
	}
	if stats.Extracted > 0 {
		stats.AvgExtractTime = totalTime / float64(stats.Extracted)
	}
	return stats
}

// SkipRate 获取窗口内跳过率 (0-100)
func (w *Window) SkipRate() float64 {
	return w.GetStats().SkipRate
}

// Stop 停止统计
func (w *Window) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}
