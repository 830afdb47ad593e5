// pkg/pool/bytebuff/pool_test.go
package bytebuff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_GetPut(t *testing.T) {
	p := NewPool()

	t.Run("get returns buffer", func(t *testing.T) {
		buf := p.Get(100)
		assert.NotNil(t, buf)
		assert.GreaterOrEqual(t, buf.Cap(), 100)
		p.Put(buf)
	})

	t.Run("get with zero hint", func(t *testing.T) {
		buf := p.Get(0)
		assert.NotNil(t, buf)
		p.Put(buf)
	})

	t.Run("put nil is safe", func(t *testing.T) {
		p.Put(nil)
	})

	t.Run("oversized buffer not pooled", func(t *testing.T) {
		pp := NewPool()

		buf := pp.Get(maxSize + 1)
		assert.NotNil(t, buf)

		_, puts1, _ := pp.Stats()
		pp.Put(buf)
		_, puts2, _ := pp.Stats()
		assert.Equal(t, puts1, puts2)
	})
}

func TestPool_SelectPool(t *testing.T) {
	p := NewPool()

	tests := []struct {
		sizeHint    int
		expectedIdx int
	}{
		{0, 0},
		{1 << 10, 0},
		{(1 << 10) + 1, 1},
		{1 << 14, 1},
		{1 << 18, 2},
		{1 << 20, 3},
		{1 << 22, 4},
		{(1 << 22) + 1, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expectedIdx, p.selectPool(tt.sizeHint), "sizeHint=%d", tt.sizeHint)
	}
}

func TestByteBuffer(t *testing.T) {
	buf := GetByteBuffer()
	assert.NotNil(t, buf)

	buf.WriteString("checksum=deadbeef")
	assert.Equal(t, "checksum=deadbeef", buf.String())
	PutByteBuffer(buf)
	PutByteBuffer(nil)
}
