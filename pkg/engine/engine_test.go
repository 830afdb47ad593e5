// pkg/engine/engine_test.go
package engine

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/xintegrity/pkg/config"
	"github.com/lk2023060901/xintegrity/pkg/content"
	"github.com/lk2023060901/xintegrity/pkg/strategy"
	"github.com/lk2023060901/xintegrity/pkg/validator"
)

func TestNew_Defaults(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)
	defer e.Close()

	require.NotNil(t, e.Generator)
	require.NotNil(t, e.Validator)
	require.NotNil(t, e.Cache)

	assert.Equal(t, "crc32c", e.Generator.Hasher().Name())

	// 默认阈值下小内容用完整读取
	fp, err := e.Generator.Fingerprint(content.NewBytes([]byte("hello")), strategy.UseCaseUpload)
	require.NoError(t, err)
	assert.Equal(t, strategy.KindDirect, fp.Strategy.Kind)
}

func TestNew_CustomPolicy(t *testing.T) {
	e, err := New(&config.EngineConfig{
		Checksum:        "xxhash",
		DirectThreshold: 1024,
		HeadTailChunk:   128,
	})
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, "xxhash", e.Generator.Hasher().Name())

	// 自定义阈值生效：2 KiB 内容已经超过 1 KiB 阈值
	data := bytes.Repeat([]byte("a"), 2048)
	fp, err := e.Generator.Fingerprint(content.NewBytes(data), strategy.UseCaseUpload)
	require.NoError(t, err)
	assert.Equal(t, strategy.KindHeadTail, fp.Strategy.Kind)
	assert.Equal(t, uint64(128), fp.Strategy.Chunk)

	// 阈值以下仍然完整读取
	fp, err = e.Generator.Fingerprint(content.NewBytes(data[:512]), strategy.UseCaseUpload)
	require.NoError(t, err)
	assert.Equal(t, strategy.KindDirect, fp.Strategy.Kind)
}

func TestNew_CustomCacheChunk(t *testing.T) {
	e, err := New(&config.EngineConfig{CacheChunk: 64})
	require.NoError(t, err)
	defer e.Close()

	data := bytes.Repeat([]byte("b"), 256)
	fp, err := e.Generator.Fingerprint(content.NewBytes(data), strategy.UseCaseCache)
	require.NoError(t, err)
	assert.Equal(t, strategy.KindHeadTail, fp.Strategy.Kind)
	assert.Equal(t, uint64(64), fp.Strategy.Chunk)
}

func TestNew_ValidatorAndCacheWired(t *testing.T) {
	e, err := New(&config.EngineConfig{Digest: "sha512_256"})
	require.NoError(t, err)
	defer e.Close()

	ctx := context.Background()
	h := content.NewBytes([]byte("payload"))

	report, err := e.Validator.Validate(ctx, h, validator.Expectation{})
	require.NoError(t, err)
	assert.Equal(t, validator.StatusUnconfirmed, report.Status)

	dirty, err := e.Cache.IsDirty(ctx, "k", h)
	require.NoError(t, err)
	assert.True(t, dirty)
	require.NoError(t, e.Cache.MarkClean(ctx, "k", h))
	dirty, err = e.Cache.IsDirty(ctx, "k", h)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&config.EngineConfig{Checksum: "md5"})
	assert.Error(t, err)
}
