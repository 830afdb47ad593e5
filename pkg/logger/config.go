// pkg/logger/config.go
package logger

// Level 日志等级
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Format 输出格式
type Format string

const (
	// JSONFormat JSON 结构化输出
	JSONFormat Format = "json"
	// ConsoleFormat 控制台友好输出
	ConsoleFormat Format = "console"
)

// Config 日志配置
type Config struct {
	// Level 日志等级
	Level Level `mapstructure:"level"`

	// Format 输出格式
	Format Format `mapstructure:"format"`

	// EnableConsole 输出到控制台
	EnableConsole bool `mapstructure:"enable_console"`

	// EnableFile 输出到文件
	EnableFile bool `mapstructure:"enable_file"`

	// OutputPath 日志文件路径，EnableFile 时必填
	OutputPath string `mapstructure:"output_path"`

	// Rotation 文件轮换配置
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig 日志轮换配置（按大小）
type RotationConfig struct {
	// MaxSize 单文件上限 (MB)
	MaxSize int `mapstructure:"max_size"`

	// MaxBackups 保留的旧文件数
	MaxBackups int `mapstructure:"max_backups"`

	// MaxAge 保留天数
	MaxAge int `mapstructure:"max_age"`

	// Compress 压缩旧文件
	Compress bool `mapstructure:"compress"`
}

// DefaultConfig 返回默认日志配置
func DefaultConfig() *Config {
	return &Config{
		Level:         InfoLevel,
		Format:        JSONFormat,
		EnableConsole: true,
		Rotation: RotationConfig{
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// Validate 验证日志配置
func (c *Config) Validate() error {
	if !c.EnableConsole && !c.EnableFile {
		return ErrNoOutputEnabled
	}
	if c.EnableFile && c.OutputPath == "" {
		return ErrInvalidOutputPath
	}
	return nil
}
