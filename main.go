package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command/convert"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command/run"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command/script"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "跨平台设置环境变量并执行命令",
		Version: version.GetVersion(),
		Flags:   command.Flags,
		Commands: []*cli.Command{
			version.Command,
			run.Command,
			run.ShellCommand,
			convert.Command,
			script.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
