// Package script 提供 script 命令：执行配置文件中的命名脚本。
package script

import (
	"github.com/urfave/cli/v3"
)

// Command 执行 scripts 中定义的命令行，额外参数追加在末尾。
//
//	# .crossenv.yaml
//	scripts:
//	  build: "NODE_ENV=production webpack --config ./webpack.config.js"
//
//	crossenv script build --watch
var Command = &cli.Command{
	Name:            "script",
	Usage:           "执行配置中的命名脚本",
	ArgsUsage:       "<name> [args...]",
	SkipFlagParsing: true,
	Action:          action,
}
