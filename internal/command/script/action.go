package script

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("script: missing name (available: %s)", available(cfg.Scripts))
	}

	argv, err := Resolve(cfg.Scripts, args[0], args[1:])
	if err != nil {
		return err
	}

	return command.Execute(ctx, cfg, argv, false)
}

// Resolve 将脚本 name 拆分为参数列表并追加 extra。
func Resolve(scripts map[string]string, name string, extra []string) ([]string, error) {
	line, ok := scripts[name]
	if !ok {
		return nil, fmt.Errorf("script: unknown script %q (available: %s)", name, available(scripts))
	}

	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("script: splitting %q: %w", name, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("script: %q is empty", name)
	}

	return append(argv, extra...), nil
}

func available(scripts map[string]string) string {
	if len(scripts) == 0 {
		return "none"
	}

	return strings.Join(slices.Sorted(maps.Keys(scripts)), ", ")
}
