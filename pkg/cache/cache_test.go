// pkg/cache/cache_test.go
package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/xintegrity/pkg/content"
)

func TestIsDirty(t *testing.T) {
	ctx := context.Background()
	c := New()

	data := []byte("document body v1")

	t.Run("unknown key is dirty", func(t *testing.T) {
		dirty, err := c.IsDirty(ctx, "doc-1", content.NewBytes(data))
		require.NoError(t, err)
		assert.True(t, dirty)
	})

	t.Run("clean after mark", func(t *testing.T) {
		require.NoError(t, c.MarkClean(ctx, "doc-1", content.NewBytes(data)))

		dirty, err := c.IsDirty(ctx, "doc-1", content.NewBytes(data))
		require.NoError(t, err)
		assert.False(t, dirty)
	})

	t.Run("dirty again after content change", func(t *testing.T) {
		changed := []byte("document body v2")
		dirty, err := c.IsDirty(ctx, "doc-1", content.NewBytes(changed))
		require.NoError(t, err)
		assert.True(t, dirty)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	c := New()
	data := []byte("payload")

	require.NoError(t, c.MarkClean(ctx, "k1", content.NewBytes(data)))
	require.NoError(t, c.MarkClean(ctx, "k2", content.NewBytes(data)))

	require.NoError(t, c.Invalidate(ctx, "k1"))

	dirty, err := c.IsDirty(ctx, "k1", content.NewBytes(data))
	require.NoError(t, err)
	assert.True(t, dirty, "invalidated key must be dirty")

	dirty, err = c.IsDirty(ctx, "k2", content.NewBytes(data))
	require.NoError(t, err)
	assert.False(t, dirty, "untouched key stays clean")
}

func TestExtractBatch_SkipRate(t *testing.T) {
	ctx := context.Background()
	c := New(WithBatchConcurrency(8))

	// 100 个键，其中 90 个先标记干净且内容未变
	const total = 100
	const changed = 10

	inputs := make([]Input, 0, total)
	for i := 0; i < total; i++ {
		key := fmt.Sprintf("pkg-%03d", i)
		data := []byte(fmt.Sprintf("archive content %03d", i))
		inputs = append(inputs, Input{Key: key, Handle: content.NewBytes(data)})

		if i >= changed {
			require.NoError(t, c.MarkClean(ctx, key, content.NewBytes(data)))
		}
	}

	var calls atomic.Int64
	results, stats, err := c.ExtractBatch(ctx, inputs, func(ctx context.Context, in Input) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)

	// 批量处理的全部价值：未变化的 90 个绝不重新抽取
	assert.Equal(t, int64(changed), calls.Load())
	assert.Equal(t, total, stats.Total)
	assert.Equal(t, total-changed, stats.Skipped)
	assert.Equal(t, changed, stats.Extracted)
	assert.Equal(t, 0, stats.Failed)

	for i, res := range results {
		assert.Equal(t, inputs[i].Key, res.Key)
		assert.Equal(t, i >= changed, res.Skipped, "key %s", res.Key)
		assert.NoError(t, res.Err)
	}

	// 第二轮：全部都应被跳过
	calls.Store(0)
	_, stats, err = c.ExtractBatch(ctx, inputs, func(ctx context.Context, in Input) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), calls.Load())
	assert.Equal(t, total, stats.Skipped)
}

func TestExtractBatch_FailedExtractionStaysDirty(t *testing.T) {
	ctx := context.Background()
	c := New()

	in := Input{Key: "flaky", Handle: content.NewBytes([]byte("data"))}

	_, stats, err := c.ExtractBatch(ctx, []Input{in}, func(ctx context.Context, in Input) error {
		return fmt.Errorf("downstream unavailable")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)

	// 抽取失败的条目未被标记干净，下一轮重试
	dirty, err := c.IsDirty(ctx, "flaky", in.Handle)
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestExtractBatch_NilExtractor(t *testing.T) {
	c := New()
	_, _, err := c.ExtractBatch(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNilExtractor)
}

func TestMarkClean_ConcurrentSameKey(t *testing.T) {
	ctx := context.Background()
	c := New()
	data := []byte("contended content")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.MarkClean(ctx, "hot-key", content.NewBytes(data))
			_, _ = c.IsDirty(ctx, "hot-key", content.NewBytes(data))
		}()
	}
	wg.Wait()

	dirty, err := c.IsDirty(ctx, "hot-key", content.NewBytes(data))
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, Entry{Key: "a", Checksum: 42}))
	e, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(42), e.Checksum)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)

	require.NoError(t, s.Delete(ctx, "a", "nonexistent"))
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, Entry{Key: "b"}))
	require.NoError(t, s.Clear(ctx))
	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
