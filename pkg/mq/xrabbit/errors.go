package xrabbit

import "errors"

// 配置加载相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xrabbit: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xrabbit: unsupported config format")

	// ErrLoadFailed 表示配置读取或解析失败。
	ErrLoadFailed = errors.New("xrabbit: config load failed")

	// ErrInvalidConfig 表示配置项取值无效。
	ErrInvalidConfig = errors.New("xrabbit: invalid config value")
)
