// pkg/cache/snapshot_test.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/xintegrity/pkg/content"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, compression := range []string{"none", "snappy", "zstd", "lz4"} {
		t.Run(compression, func(t *testing.T) {
			src := New(WithCompression(compression))

			handles := make(map[string]content.Handle)
			for i := 0; i < 25; i++ {
				key := fmt.Sprintf("file-%02d", i)
				handles[key] = content.NewBytes([]byte(fmt.Sprintf("content %02d", i)))
				require.NoError(t, src.MarkClean(ctx, key, handles[key]))
			}

			data, err := src.Export(ctx)
			require.NoError(t, err)

			dst := New()
			require.NoError(t, dst.Import(ctx, data))

			// 每个键的 IsDirty 回答必须与原缓存一致
			for key, h := range handles {
				srcDirty, err := src.IsDirty(ctx, key, h)
				require.NoError(t, err)
				dstDirty, err := dst.IsDirty(ctx, key, h)
				require.NoError(t, err)
				assert.Equal(t, srcDirty, dstDirty, "key %s", key)
				assert.False(t, dstDirty)
			}

			// 原缓存没有的键在恢复后同样是脏的
			dirty, err := dst.IsDirty(ctx, "never-seen", content.NewBytes([]byte("x")))
			require.NoError(t, err)
			assert.True(t, dirty)
		})
	}
}

func TestSnapshot_EnvelopeFormat(t *testing.T) {
	ctx := context.Background()
	c := New()
	require.NoError(t, c.MarkClean(ctx, "k", content.NewBytes([]byte("v"))))

	data, err := c.Export(ctx)
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, float64(snapshotVersion), env["version"])
	assert.Equal(t, "none", env["compression"])
	assert.NotEmpty(t, env["payload"])
}

func TestSnapshot_ImportOverwrites(t *testing.T) {
	ctx := context.Background()

	src := New()
	require.NoError(t, src.MarkClean(ctx, "keep", content.NewBytes([]byte("a"))))
	data, err := src.Export(ctx)
	require.NoError(t, err)

	dst := New()
	require.NoError(t, dst.MarkClean(ctx, "stale", content.NewBytes([]byte("b"))))
	require.NoError(t, dst.Import(ctx, data))

	// 导入是整体覆盖，旧条目消失
	dirty, err := dst.IsDirty(ctx, "stale", content.NewBytes([]byte("b")))
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestSnapshot_BadInput(t *testing.T) {
	ctx := context.Background()
	c := New()

	t.Run("not json", func(t *testing.T) {
		err := c.Import(ctx, []byte("garbage"))
		assert.ErrorIs(t, err, ErrSnapshotCorrupt)
	})

	t.Run("wrong version", func(t *testing.T) {
		err := c.Import(ctx, []byte(`{"version":99,"compression":"none","payload":""}`))
		assert.ErrorIs(t, err, ErrSnapshotVersion)
	})

	t.Run("payload not compressed data", func(t *testing.T) {
		// "garbage" 的 base64，不是合法的 snappy 数据
		err := c.Import(ctx, []byte(`{"version":1,"compression":"snappy","payload":"Z2FyYmFnZQ=="}`))
		assert.ErrorIs(t, err, ErrSnapshotCorrupt)
	})

	t.Run("body not json", func(t *testing.T) {
		err := c.Import(ctx, []byte(`{"version":1,"compression":"none","payload":"Z2FyYmFnZQ=="}`))
		assert.ErrorIs(t, err, ErrSnapshotCorrupt)
	})
}
