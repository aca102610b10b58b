// Package run 提供 run 与 shell 命令：设置环境变量后执行命令。
package run

import (
	"github.com/urfave/cli/v3"
)

// Command 直接执行命令（不经过 shell）。
//
//	crossenv run NODE_ENV=production node ./server.js --port $PORT
var Command = &cli.Command{
	Name:            "run",
	Usage:           "设置环境变量并执行命令",
	ArgsUsage:       "[NAME=value...] <command> [args...]",
	SkipFlagParsing: true,
	Action:          runAction,
}

// ShellCommand 通过 shell 执行拼接后的命令行，可使用管道、&& 等 shell 语法。
//
//	crossenv shell "NODE_ENV=test" "echo $NODE_ENV && npm test"
var ShellCommand = &cli.Command{
	Name:            "shell",
	Usage:           "设置环境变量并通过 shell 执行命令",
	ArgsUsage:       "[NAME=value...] <command line...>",
	SkipFlagParsing: true,
	Action:          shellAction,
}
