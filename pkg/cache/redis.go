// pkg/cache/redis.go
package cache

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/lk2023060901/xintegrity/pkg/config"
)

// 确保 redisStore 实现了 Store 接口
var _ Store = (*redisStore)(nil)

// redisStore Redis 后端
// 单个 hash 承载整个命名空间，field 是内容键，value 是条目 JSON；
// 条目整体一次 HSET 写入，不存在半更新状态
type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore 创建 Redis 后端
func NewRedisStore(cfg *config.RedisConfig) (Store, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis addr is required")
	}

	ns := cfg.Namespace
	if ns == "" {
		ns = "xintegrity"
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	return &redisStore{
		client: client,
		key:    ns + ":entries",
	}, nil
}

// Get 读取条目
func (s *redisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := s.client.HGet(ctx, s.key, key).Result()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, errors.Wrap(err, "redis hget")
	}

	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Entry{}, false, errors.Wrapf(err, "decode entry %s", key)
	}
	return e, true, nil
}

// Set 写入条目
func (s *redisStore) Set(ctx context.Context, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return errors.Wrapf(err, "encode entry %s", e.Key)
	}
	if err := s.client.HSet(ctx, s.key, e.Key, raw).Err(); err != nil {
		return errors.Wrap(err, "redis hset")
	}
	return nil
}

// Delete 删除条目
func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.key, keys...).Err(); err != nil {
		return errors.Wrap(err, "redis hdel")
	}
	return nil
}

// Keys 列出全部键
func (s *redisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis hkeys")
	}
	return keys, nil
}

// Clear 清空全部条目
func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}

// Close 关闭连接
func (s *redisStore) Close() error {
	return s.client.Close()
}
