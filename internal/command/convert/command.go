// Package convert 提供 convert 命令：只输出转换结果，不执行。
package convert

import (
	"github.com/urfave/cli/v3"
)

// Command 按目标平台转换命令行并打印。
var Command = &cli.Command{
	Name:      "convert",
	Usage:     "输出转换后的命令行",
	ArgsUsage: "<command...>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "normalize",
			Aliases: []string{"n"},
			Usage:   "去掉开头的 ./ (仅 Windows 目标)",
		},
		&cli.StringSliceFlag{
			Name:  "var",
			Usage: "额外的变量，格式 NAME=value，可重复",
		},
		&cli.BoolFlag{
			Name:  "no-environ",
			Usage: "不使用当前进程的环境变量",
		},
	},
	Action: action,
}
