package xrabbit

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// 保留键：取值始终由库计算，调用方的覆盖尝试被静默忽略。
const (
	propCapabilities   = "capabilities"
	propPlatform       = "platform"
	propProduct        = "product"
	propVersion        = "version"
	propConnectionName = "connection_name"
)

// 默认键：由库计算默认值，调用方可覆盖。
const (
	propTask      = "task"
	propPID       = "pid"
	propOS        = "os"
	propOSVersion = "os_version"
	propOSPatch   = "os_patch"
)

var reservedProperties = map[string]struct{}{
	propCapabilities:   {},
	propPlatform:       {},
	propProduct:        {},
	propVersion:        {},
	propConnectionName: {},
}

var overridableProperties = map[string]struct{}{
	propTask:      {},
	propPID:       {},
	propOS:        {},
	propOSVersion: {},
	propOSPatch:   {},
}

// IsReservedClientProperty 报告 name 是否为保留身份键。
// 保留键的取值始终由库计算，SetClientProperty 对其不生效。
func IsReservedClientProperty(name string) bool {
	_, ok := reservedProperties[name]
	return ok
}

// IsOverridableClientProperty 报告 name 是否为库提供默认值、
// 但允许调用方覆盖的身份键。
func IsOverridableClientProperty(name string) bool {
	_, ok := overridableProperties[name]
	return ok
}

// applyClientProperty 将一次身份键写入施加到字段表上，返回新表。
// 保留键的写入被拒绝（返回的表与输入等值），其余键为最后写入生效。
// 输入表不被修改。
func applyClientProperty(table FieldTable, name string, value FieldValue) FieldTable {
	out := table.Clone()
	if IsReservedClientProperty(name) {
		return out
	}
	out[name] = value
	return out
}

// defaultClientProperties 构建库计算的初始身份表，
// 覆盖保留键与可覆盖默认键的全部名字。
func defaultClientProperties() FieldTable {
	task := processName()
	osVersion, osPatch := osVersionInfo()

	return FieldTable{
		propProduct:        StringValue(libraryProduct),
		propVersion:        StringValue(Version),
		propPlatform:       StringValue(runtime.Version() + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"),
		propCapabilities:   TableValue(defaultCapabilities()),
		propConnectionName: StringValue(task + "/" + uuid.NewString()),
		propTask:           StringValue(task),
		propPID:            Int64Value(int64(os.Getpid())),
		propOS:             StringValue(runtime.GOOS),
		propOSVersion:      StringValue(osVersion),
		propOSPatch:        StringValue(osPatch),
	}
}

// defaultCapabilities 声明客户端支持的 Broker 扩展能力。
func defaultCapabilities() FieldTable {
	return FieldTable{
		"publisher_confirms":           BoolValue(true),
		"consumer_cancel_notify":       BoolValue(true),
		"connection.blocked":           BoolValue(true),
		"authentication_failure_close": BoolValue(true),
		"basic.nack":                   BoolValue(true),
	}
}

// processName 返回当前进程名称（不含路径）。
// 优先使用 os.Executable（不受 os.Args 修改影响），失败时回退到 os.Args[0]；
// 所有来源均无效时回退到 "pid-<pid>"，保证身份表的 task 键始终非空。
func processName() string {
	if exe, err := os.Executable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		if name := baseName(os.Args[0]); name != "" {
			return name
		}
	}
	return "pid-" + strconv.Itoa(os.Getpid())
}

// baseName 提取路径的基础文件名。
// 对 filepath.Base 返回的特殊值（"."、".."、路径分隔符）返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
