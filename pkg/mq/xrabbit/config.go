package xrabbit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 表示配置数据格式。
type Format string

const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"
	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// 配置键名。
const (
	keyMessageProcessingTimeout  = "message_processing_timeout"
	keyConnectionErrorThreshold  = "connection_error_threshold"
	keyShuffleConnectionEndpoint = "shuffle_connection_endpoints"
	keyClientProperties          = "client_properties"
	keyTunables                  = "tunables"
)

// LoadFile 从配置文件加载选项，根据扩展名自动检测格式（.yaml/.yml 或 .json）。
// 语义与 LoadBytes 一致。
func (o *ContextOptions) LoadFile(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return o.LoadBytes(data, format)
}

// LoadBytes 从配置数据加载选项。适用于 K8s ConfigMap 等场景。
//
// 支持的键（均可省略，省略的键保持聚合器当前取值）：
//   - message_processing_timeout: 时长字符串（如 "30s"）
//   - connection_error_threshold: 时长字符串
//   - shuffle_connection_endpoints: 布尔值
//   - client_properties: 字符串键值对，经由 SetClientProperty 写入
//     （保留身份键同样被静默忽略）
//   - tunables: 字符串列表
//
// 未知键被忽略。时长解析失败时返回 ErrInvalidConfig，聚合器可能已
// 部分更新；调用方应将加载失败视为配置错误终止启动，而非继续使用。
func (o *ContextOptions) LoadBytes(data []byte, format Format) error {
	k := koanf.New(".")

	switch format {
	case FormatYAML:
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
	case FormatJSON:
		if err := k.Load(rawbytes.Provider(data), json.Parser()); err != nil {
			return fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
	default:
		return ErrUnsupportedFormat
	}

	if k.Exists(keyMessageProcessingTimeout) {
		timeout, err := parseDuration(k, keyMessageProcessingTimeout)
		if err != nil {
			return err
		}
		o.SetMessageProcessingTimeout(timeout)
	}

	if k.Exists(keyConnectionErrorThreshold) {
		threshold, err := parseDuration(k, keyConnectionErrorThreshold)
		if err != nil {
			return err
		}
		o.SetConnectionErrorThreshold(threshold)
	}

	if k.Exists(keyShuffleConnectionEndpoint) {
		o.SetShuffleConnectionEndpoints(k.Bool(keyShuffleConnectionEndpoint))
	}

	for name, value := range k.StringMap(keyClientProperties) {
		o.SetClientProperty(name, StringValue(value))
	}

	for _, tunable := range k.Strings(keyTunables) {
		o.SetTunable(tunable)
	}
	return nil
}

func parseDuration(k *koanf.Koanf, key string) (time.Duration, error) {
	value, err := time.ParseDuration(k.String(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return value, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", ErrUnsupportedFormat
	}
}
