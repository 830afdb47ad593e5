// pkg/content/errors.go
package content

import "errors"

var (
	// ErrIO 底层资源不可读写
	// 引擎内唯一向外传播的错误类别，内部绝不重试
	ErrIO = errors.New("content: io failure")

	// ErrSizeMismatch 声明大小与实际可读大小不符
	// 校验场景致命，指纹场景仅作参考信息
	ErrSizeMismatch = errors.New("content: size mismatch")

	// ErrOutOfRange 请求的字节区间超出资源边界
	ErrOutOfRange = errors.New("content: range out of bounds")
)
