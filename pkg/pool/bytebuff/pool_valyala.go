// pkg/pool/bytebuff/pool_valyala.go
package bytebuff

import (
	"github.com/valyala/bytebufferpool"
)

// valyala 的 ByteBuffer 池用于短生命周期的字符串拼装，
// 例如报告的日志行渲染；自动按使用模式校准容量

// GetByteBuffer 从全局 valyala 池获取一个 ByteBuffer
func GetByteBuffer() *bytebufferpool.ByteBuffer {
	return bytebufferpool.Get()
}

// PutByteBuffer 归还 ByteBuffer
func PutByteBuffer(buf *bytebufferpool.ByteBuffer) {
	if buf == nil {
		return
	}
	bytebufferpool.Put(buf)
}
