// Package platform 提供目标平台探测。
//
// 探测函数的形式为 func() bool，返回 true 表示目标平台使用 Windows 变量语法。
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// 平台名称，用于配置文件与 CLI flag。
const (
	Auto    = "auto"
	Windows = "windows"
	Unix    = "unix"
)

// IsWindows 报告当前进程是否运行在 Windows 上。
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// Fixed 返回恒定结果的探测函数，适合测试或强制指定目标平台。
func Fixed(windows bool) func() bool {
	return func() bool { return windows }
}

// ByName 按名称返回探测函数。
//
// 名称不区分大小写，空串等同于 "auto"。
func ByName(name string) (func() bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Auto:
		return IsWindows, nil
	case Windows:
		return Fixed(true), nil
	case Unix:
		return Fixed(false), nil
	}

	return nil, fmt.Errorf("platform: unknown platform %q (want auto, windows or unix)", name)
}
