// pkg/cache/redis_test.go
package cache

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/xintegrity/pkg/config"
)

// 需要真实 Redis 实例，通过环境变量指定地址，未设置时跳过
func newTestRedisStore(t *testing.T) Store {
	t.Helper()

	addr := os.Getenv("XINTEGRITY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("XINTEGRITY_TEST_REDIS_ADDR not set")
	}

	s, err := NewRedisStore(&config.RedisConfig{
		Addr:      addr,
		Namespace: "xintegrity-test",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Clear(context.Background())
	})
	return s
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)
	require.NoError(t, s.Clear(ctx))

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, Entry{Key: "a", Checksum: 0xDEADBEEF}))
	e, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(0xDEADBEEF), e.Checksum)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)

	require.NoError(t, s.Delete(ctx, "a"))
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisStore_MissingAddr(t *testing.T) {
	_, err := NewRedisStore(&config.RedisConfig{})
	assert.Error(t, err)

	_, err = NewRedisStore(nil)
	assert.Error(t, err)
}
