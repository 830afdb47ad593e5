// pkg/content/handle.go
package content

import "io"

// Handle 内容句柄，引擎的逻辑输入
// 总大小在任何策略决策之前就已知；对可切片资源，
// 读取任意字节区间都不需要把整个资源装入内存
//
// 句柄由调用方持有且仅在单次调用内有效，引擎不保留引用
type Handle interface {
	// Size 返回内容总大小（字节）
	Size() uint64

	// Open 打开顺序读取器，用于完整读取全部内容
	Open() (io.ReadCloser, error)

	// ReadRange 读取 [off, off+n) 区间的字节
	// 区间越界返回 ErrOutOfRange，底层读失败返回带 ErrIO 标记的错误
	ReadRange(off, n uint64) ([]byte, error)
}
