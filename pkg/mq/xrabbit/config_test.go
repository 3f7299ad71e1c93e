package xrabbit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
message_processing_timeout: 30s
connection_error_threshold: 5m
shuffle_connection_endpoints: true
client_properties:
  task: myservice
  platform: custom
tunables:
  - feature-x
  - feature-x
  - feature-y
`

func TestLoadBytes_YAML(t *testing.T) {
	opts := NewContextOptions()
	require.NoError(t, opts.LoadBytes([]byte(yamlConfig), FormatYAML))

	assert.Equal(t, 30*time.Second, opts.MessageProcessingTimeout())

	threshold, ok := opts.ConnectionErrorThreshold()
	require.True(t, ok)
	assert.Equal(t, 5*time.Minute, threshold)

	shuffle, ok := opts.ShuffleConnectionEndpoints()
	require.True(t, ok)
	assert.True(t, shuffle)

	task, _ := opts.ClientProperties()["task"].Str()
	assert.Equal(t, "myservice", task)

	// 配置中的保留键经由同一静默策略，不生效
	platform, _ := opts.ClientProperties()["platform"].Str()
	assert.NotEqual(t, "custom", platform)

	assert.Equal(t, []string{"feature-x", "feature-y"}, opts.Tunables())
}

func TestLoadBytes_JSON(t *testing.T) {
	data := []byte(`{
		"message_processing_timeout": "45s",
		"tunables": ["feature-z"]
	}`)

	opts := NewContextOptions()
	require.NoError(t, opts.LoadBytes(data, FormatJSON))

	assert.Equal(t, 45*time.Second, opts.MessageProcessingTimeout())
	assert.Equal(t, []string{"feature-z"}, opts.Tunables())
}

func TestLoadBytes_OmittedKeysKeepCurrentValues(t *testing.T) {
	opts := NewContextOptions().SetMessageProcessingTimeout(10 * time.Second)

	require.NoError(t, opts.LoadBytes([]byte(`tunables: [a]`), FormatYAML))

	// 省略的键保持聚合器当前取值
	assert.Equal(t, 10*time.Second, opts.MessageProcessingTimeout())
	_, ok := opts.ConnectionErrorThreshold()
	assert.False(t, ok)
	_, ok = opts.ShuffleConnectionEndpoints()
	assert.False(t, ok)
}

func TestLoadBytes_InvalidDuration(t *testing.T) {
	opts := NewContextOptions()

	err := opts.LoadBytes([]byte(`message_processing_timeout: fast`), FormatYAML)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadBytes_MalformedData(t *testing.T) {
	opts := NewContextOptions()

	err := opts.LoadBytes([]byte("{not yaml: ["), FormatYAML)

	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoadBytes_UnsupportedFormat(t *testing.T) {
	opts := NewContextOptions()

	err := opts.LoadBytes([]byte(`{}`), Format("toml"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o600))

	opts := NewContextOptions()
	require.NoError(t, opts.LoadFile(path))

	assert.Equal(t, 30*time.Second, opts.MessageProcessingTimeout())
}

func TestLoadFile_Errors(t *testing.T) {
	opts := NewContextOptions()

	assert.ErrorIs(t, opts.LoadFile(""), ErrEmptyPath)
	assert.ErrorIs(t, opts.LoadFile("options.toml"), ErrUnsupportedFormat)
	assert.ErrorIs(t, opts.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")), ErrLoadFailed)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a.yaml", want: FormatYAML},
		{path: "a.yml", want: FormatYAML},
		{path: "A.YAML", want: FormatYAML},
		{path: "a.json", want: FormatJSON},
		{path: "a.toml", wantErr: true},
		{path: "a", wantErr: true},
	}
	for _, tt := range tests {
		format, err := detectFormat(tt.path)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, format, tt.path)
	}
}
