package run

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/internal/command"
)

func runAction(ctx context.Context, cmd *cli.Command) error {
	return execute(ctx, cmd, false)
}

func shellAction(ctx context.Context, cmd *cli.Command) error {
	return execute(ctx, cmd, true)
}

func execute(ctx context.Context, cmd *cli.Command, useShell bool) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	return command.Execute(ctx, cfg, cmd.Args().Slice(), useShell)
}
