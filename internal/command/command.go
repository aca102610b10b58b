// Package command 提供 crossenv 各子命令共用的配置加载与执行流程。
package command

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/internal/config"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/crossenv"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/runner"
	"github.com/lwmacct/251207-go-pkg-crossenv/internal/version"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/envvar"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/platform"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// Flags 为根命令的全局 flags，名称与配置 key 对应（. 替换为 -）。
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "配置文件路径（默认搜索 .crossenv.yaml 等）",
	},
	&cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Value:   Defaults.Platform,
		Usage:   "目标平台: auto / windows / unix",
	},
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "输出调试日志",
	},
	&cli.StringFlag{
		Name:  "shell-unix",
		Value: Defaults.Shell.Unix,
		Usage: "UNIX 平台 shell 模式的解释器",
	},
	&cli.StringFlag{
		Name:  "shell-windows",
		Value: Defaults.Shell.Windows,
		Usage: "Windows 平台 shell 模式的解释器",
	},
}

// RawKeys 为加载时不做变量展开的配置 key。
//
// env 的值在执行时按目标平台转换，scripts 的命令行在执行时按 run 的流程转换。
var RawKeys = []string{"env", "scripts"}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	if cmd.Bool("debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), version.AppRawName,
		cfgm.WithEnvPrefix(config.EnvPrefix),
		cfgm.WithConfigPaths(cmd.String("config")),
		cfgm.WithRawKeys(RawKeys...),
	)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	return cfg, nil
}

// Probe 返回配置指定的目标平台探测函数。
func Probe(cfg *config.Config) (func() bool, error) {
	return platform.ByName(cfg.Platform)
}

// ShellPath 返回本机平台对应的 shell，路径中的变量按 env 展开。
func ShellPath(cfg *config.Config, env map[string]string) string {
	shell := cfg.Shell.Unix
	if platform.IsWindows() {
		shell = cfg.Shell.Windows
	}

	return envvar.Expand(shell, env)
}

// Execute 解析 args 并执行命令，子进程非零退出码通过 cli.Exit 透传。
//
// 只有赋值没有命令时什么也不做。
func Execute(ctx context.Context, cfg *config.Config, args []string, useShell bool) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	probe, err := Probe(cfg)
	if err != nil {
		return err
	}

	inv := crossenv.Prepare(args, crossenv.Options{
		Environ:  envvar.Environ(),
		Defaults: cfg.Env,
		Probe:    probe,
	})
	if inv.Command == "" {
		slog.Debug("No command given, nothing to run", "setters", len(inv.Setters))

		return nil
	}

	opts := runner.Options{}
	if useShell {
		opts.Shell = ShellPath(cfg, inv.Env)
	}
	slog.Debug("Running command",
		"command", inv.Command, "args", inv.Args, "windows", inv.Windows, "shell", opts.Shell)

	code, err := runner.Run(ctx, runner.Command{
		Name: inv.Command,
		Args: inv.Args,
		Env:  inv.Environ(),
	}, opts)
	if err != nil {
		return err
	}
	if code != 0 {
		return cli.Exit("", code)
	}

	return nil
}
