// Package version 提供构建版本信息与 version 子命令。
package version

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，同时用于默认配置文件名 (.crossenv.yaml)。
const AppRawName = "crossenv"

// 构建时通过 -ldflags "-X" 注入。
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
)

// GetVersion 返回版本字符串。
func GetVersion() string {
	return AppVersion
}

// Command 打印版本信息。
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (commit %s, %s/%s)\n",
			AppRawName, AppVersion, GitCommit, runtime.GOOS, runtime.GOARCH)

		return err
	},
}
