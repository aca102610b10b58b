//go:build !windows

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/internal/config"
)

func unixConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Platform = "unix"

	return &cfg
}

func TestExecute_PropagatesExitCode(t *testing.T) {
	err := Execute(context.Background(), unixConfig(), []string{"CROSSENV_TEST=1", "sh", "-c", `exit "$CROSSENV_TEST"`}, false)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}

func TestExecute_Success(t *testing.T) {
	err := Execute(context.Background(), unixConfig(), []string{"--", "sh", "-c", "exit 0"}, false)
	require.NoError(t, err)
}

func TestExecute_ShellMode(t *testing.T) {
	cfg := unixConfig()
	cfg.Env = map[string]string{"CODE": "7"}

	err := Execute(context.Background(), cfg, []string{"exit", "$CODE"}, true)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.ExitCode())
}

func TestExecute_OnlySetters(t *testing.T) {
	require.NoError(t, Execute(context.Background(), unixConfig(), []string{"A=1"}, false))
}

func TestExecute_UnknownPlatform(t *testing.T) {
	cfg := unixConfig()
	cfg.Platform = "beos"

	require.Error(t, Execute(context.Background(), cfg, []string{"true"}, false))
}

func TestShellPath(t *testing.T) {
	cfg := unixConfig()
	cfg.Shell.Unix = "${CROSSENV_SHELL_DIR:/bin}/sh"

	assert.Equal(t, "/bin/sh", ShellPath(cfg, map[string]string{}))
	assert.Equal(t, "/usr/bin/sh", ShellPath(cfg, map[string]string{"CROSSENV_SHELL_DIR": "/usr/bin"}))
}
