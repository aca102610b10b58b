package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/cmdconv"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/envvar"
)

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("convert: missing command")
	}

	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}
	probe, err := command.Probe(cfg)
	if err != nil {
		return err
	}

	vars, err := variables(cmd, cfg.Env)
	if err != nil {
		return err
	}

	line := strings.Join(cmd.Args().Slice(), " ")
	out := cmdconv.New(probe).Convert(line, vars, cmd.Bool("normalize"))
	_, err = fmt.Fprintln(cmd.Root().Writer, out)

	return err
}

// variables 合并进程环境、配置默认变量与 --var，后者优先。
func variables(cmd *cli.Command, defaults map[string]string) (map[string]string, error) {
	vars := make(map[string]string)
	if !cmd.Bool("no-environ") {
		vars = envvar.Environ()
	}
	for name, value := range defaults {
		vars[name] = value
	}
	for _, kv := range cmd.StringSlice("var") {
		name, value, ok := envvar.ParseAssignment(kv)
		if !ok {
			return nil, fmt.Errorf("convert: invalid --var %q, want NAME=value", kv)
		}
		vars[name] = value
	}

	return vars, nil
}
