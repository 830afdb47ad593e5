// pkg/strategy/strategy_test.go
package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoose_ThresholdBoundary(t *testing.T) {
	// 阈值边界：1 GiB - 1 走 Direct，恰好 1 GiB 走 HeadTail
	for _, uc := range []UseCase{UseCaseUpload, UseCaseIntegrity} {
		t.Run(uc.Name(), func(t *testing.T) {
			below := Choose(DirectThreshold-1, uc)
			assert.Equal(t, KindDirect, below.Kind)

			at := Choose(DirectThreshold, uc)
			assert.Equal(t, KindHeadTail, at.Kind)
			assert.Equal(t, DefaultChunkSize, at.Chunk)

			above := Choose(DirectThreshold*4, uc)
			assert.Equal(t, KindHeadTail, above.Kind)
		})
	}
}

func TestChoose_CacheAlwaysHeadTail(t *testing.T) {
	for _, size := range []uint64{0, 1, 1 << 20, DirectThreshold - 1, DirectThreshold, DirectThreshold * 8} {
		s := Choose(size, UseCaseCache)
		assert.Equal(t, KindHeadTail, s.Kind, "size=%d", size)
		assert.Equal(t, CacheChunkSize, s.Chunk, "size=%d", size)
	}
}

func TestChoose_ZeroSize(t *testing.T) {
	assert.Equal(t, Direct(), Choose(0, UseCaseUpload))
	assert.Equal(t, Direct(), Choose(0, UseCaseIntegrity))
}

func TestStrategy_Name(t *testing.T) {
	tests := []struct {
		s    Strategy
		name string
	}{
		{Direct(), "direct"},
		{HeadTail(DefaultChunkSize), "headtail"},
		{Skip(), "skip"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.s.Name())
	}
}

func TestStrategy_Equality(t *testing.T) {
	// 策略是值类型，块大小不同的 HeadTail 不相等
	assert.Equal(t, HeadTail(1<<20), HeadTail(1<<20))
	assert.NotEqual(t, HeadTail(1<<20), HeadTail(64<<20))
	assert.NotEqual(t, Direct(), Skip())
}

func TestPolicy_CustomThreshold(t *testing.T) {
	p := Policy{DirectThreshold: 4096, HeadTailChunk: 512, CacheChunk: 64}

	assert.Equal(t, Direct(), p.Choose(4095, UseCaseUpload))
	assert.Equal(t, HeadTail(512), p.Choose(4096, UseCaseUpload))
	assert.Equal(t, HeadTail(512), p.Choose(4096, UseCaseIntegrity))
	assert.Equal(t, HeadTail(64), p.Choose(10, UseCaseCache))
}

func TestPolicy_ZeroFieldsFallBack(t *testing.T) {
	var p Policy

	assert.Equal(t, Direct(), p.Choose(DirectThreshold-1, UseCaseUpload))
	assert.Equal(t, HeadTail(DefaultChunkSize), p.Choose(DirectThreshold, UseCaseUpload))
	assert.Equal(t, HeadTail(CacheChunkSize), p.Choose(0, UseCaseCache))
}
