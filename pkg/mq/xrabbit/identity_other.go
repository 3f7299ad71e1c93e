//go:build !linux

package xrabbit

// osVersionInfo 在非 Linux 平台上不提供内核版本信息。
// os 键仍然携带 runtime.GOOS，os_version/os_patch 为空字符串。
func osVersionInfo() (version, patch string) {
	return "", ""
}
