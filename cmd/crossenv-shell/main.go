package main

import (
	"context"
	"log/slog"
	"os"

	app "github.com/lwmacct/251207-go-pkg-crossenv/internal/command/run"
)

func main() {
	if err := app.ShellCommand.Run(context.Background(), os.Args); err != nil {
		slog.Error("crossenv-shell failed", "error", err)
		os.Exit(1)
	}
}
