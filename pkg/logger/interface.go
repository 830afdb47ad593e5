// pkg/logger/interface.go
package logger

// Logger 日志接口
// 其他 pkg 模块引用此接口，避免重复定义
// 引擎热路径自身不打日志，注入的 Logger 只服务于批量操作的诊断输出
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})

	// Named 派生带名字的子 logger
	Named(name string) Logger

	// WithFields 派生带固定字段的子 logger
	WithFields(keysAndValues ...interface{}) Logger

	// Sync 刷新缓冲
	Sync() error
}
