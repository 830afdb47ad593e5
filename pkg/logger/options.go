// pkg/logger/options.go
package logger

// Option 配置选项
type Option func(*Config)

// WithLevel 设置日志等级
func WithLevel(level Level) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithFormat 设置输出格式
func WithFormat(format Format) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithFileOutput 启用文件输出
func WithFileOutput(path string) Option {
	return func(c *Config) {
		c.EnableFile = true
		c.OutputPath = path
	}
}
