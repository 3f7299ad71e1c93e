//go:build linux

package xrabbit

import "golang.org/x/sys/unix"

// osVersionInfo 通过 uname 读取内核版本信息。
// os_version 取 release 字段（如 "6.8.0-45-generic"），
// os_patch 取 version 字段（构建信息）。读取失败时两者均为空字符串。
func osVersionInfo() (version, patch string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ""
	}
	return utsField(uts.Release[:]), utsField(uts.Version[:])
}

// utsField 将以 NUL 结尾的字节数组转换为字符串。
func utsField(field []byte) string {
	for i, b := range field {
		if b == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}
