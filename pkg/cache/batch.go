// pkg/cache/batch.go
package cache

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lk2023060901/xintegrity/pkg/content"
)

// Input 批量抽取的单个输入
type Input struct {
	// Key 内容键
	Key string
	// Handle 内容句柄
	Handle content.Handle
}

// ExtractResult 批量抽取的单条结果，与输入顺序一一对应
type ExtractResult struct {
	// Key 内容键
	Key string
	// Skipped 内容未变化，抽取被跳过
	Skipped bool
	// Err 指纹计算或抽取函数返回的错误
	Err error
}

// BatchStats 批量抽取的统计
// 跳过数就是这套缓存存在的全部意义，必须可观测
type BatchStats struct {
	Total     int
	Skipped   int
	Extracted int
	Failed    int
}

// Extractor 调用方提供的抽取函数，只对变化的内容调用
type Extractor func(ctx context.Context, in Input) error

// ExtractBatch 批量处理：跳过未变化的输入，对变化的输入执行抽取并标记干净
//
// 每个输入独立处理，整体并发度有上限；抽取失败的条目不会被标记干净，
// 下一轮批处理会重试它
func (c *Cache) ExtractBatch(ctx context.Context, inputs []Input, extract Extractor) ([]ExtractResult, BatchStats, error) {
	if extract == nil {
		return nil, BatchStats{}, ErrNilExtractor
	}

	results := make([]ExtractResult, len(inputs))
	var skipped, extracted, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, in := range inputs {
		i, in := i, in
		results[i].Key = in.Key

		g.Go(func() error {
			c.locks.lock(in.Key)
			defer c.locks.unlock(in.Key)

			dirty, err := c.isDirtyLocked(gctx, in.Key, in.Handle)
			if err != nil {
				results[i].Err = err
				failed.Add(1)
				return nil
			}

			if !dirty {
				results[i].Skipped = true
				skipped.Add(1)
				if c.window != nil {
					c.window.RecordSkip()
				}
				return nil
			}

			start := time.Now()
			if err := extract(gctx, in); err != nil {
				results[i].Err = err
				failed.Add(1)
				if c.window != nil {
					c.window.RecordExtract(time.Since(start), false)
				}
				return nil
			}
			if c.window != nil {
				c.window.RecordExtract(time.Since(start), true)
			}

			if err := c.markCleanLocked(gctx, in.Key, in.Handle); err != nil {
				results[i].Err = err
				failed.Add(1)
				return nil
			}

			extracted.Add(1)
			return nil
		})
	}

	// 所有错误都落在单条结果里，Wait 不会返回错误
	_ = g.Wait()

	stats := BatchStats{
		Total:     len(inputs),
		Skipped:   int(skipped.Load()),
		Extracted: int(extracted.Load()),
		Failed:    int(failed.Load()),
	}

	c.metrics.AddCacheSkips(stats.Skipped)
	c.metrics.AddCacheExtractions(stats.Extracted)
	c.log.Debug("extract batch complete",
		"total", stats.Total,
		"skipped", stats.Skipped,
		"extracted", stats.Extracted,
		"failed", stats.Failed,
	)

	return results, stats, nil
}
