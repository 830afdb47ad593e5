// pkg/pool/bytebuff/pool.go
package bytebuff

import (
	"bytes"
	"sync"
	"sync/atomic"
)

const (
	// maxSize 超过此容量的 buffer 不放回池中，交给 GC (4MB)
	maxSize = 1 << 22
	// numPools 分级数量
	numPools = 5
)

// 分级大小: 1KB, 16KB, 256KB, 1MB, 4MB
// 快照编码与区间读的常见大小区间
var poolSizes = [numPools]int{
	1 << 10,
	1 << 14,
	1 << 18,
	1 << 20,
	1 << 22,
}

// Pool 分级的 bytes.Buffer 对象池
type Pool struct {
	pools [numPools]sync.Pool

	gets   atomic.Uint64
	puts   atomic.Uint64
	misses atomic.Uint64
}

// defaultPool 默认的全局池
var defaultPool = NewPool()

// NewPool 创建分级 buffer pool
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.pools {
		p.pools[i].New = func() interface{} {
			return &bytes.Buffer{}
		}
	}
	return p
}

// Get 从池中获取一个 Buffer
// sizeHint 是期望容量提示，用于选择分级池
func (p *Pool) Get(sizeHint int) *bytes.Buffer {
	p.gets.Add(1)

	idx := p.selectPool(sizeHint)
	buf := p.pools[idx].Get().(*bytes.Buffer)

	if buf.Cap() < sizeHint {
		p.misses.Add(1)
		buf.Grow(sizeHint - buf.Cap())
	}
	return buf
}

// Put 将 Buffer 归还到池中
func (p *Pool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxSize {
		return
	}

	p.puts.Add(1)
	c := buf.Cap()
	buf.Reset()
	p.pools[p.selectPool(c)].Put(buf)
}

// selectPool 根据大小选择分级池
func (p *Pool) selectPool(size int) int {
	if size <= 0 {
		return 0
	}
	for i := 0; i < numPools; i++ {
		if size <= poolSizes[i] {
			return i
		}
	}
	return numPools - 1
}

// Stats 返回池的统计信息
func (p *Pool) Stats() (gets, puts, misses uint64) {
	return p.gets.Load(), p.puts.Load(), p.misses.Load()
}

// Get 从默认池中获取一个 Buffer
func Get(sizeHint int) *bytes.Buffer {
	return defaultPool.Get(sizeHint)
}

// Put 将 Buffer 归还到默认池中
func Put(buf *bytes.Buffer) {
	defaultPool.Put(buf)
}
