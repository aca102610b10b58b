//go:build !windows

package runner

import (
	"context"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

var forwardedSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}

func interruptedBySIGINT(state *os.ProcessState) bool {
	status, ok := state.Sys().(syscall.WaitStatus)

	return ok && status.Signaled() && status.Signal() == unix.SIGINT
}

func shellCommand(ctx context.Context, shell, line string) *exec.Cmd {
	return exec.CommandContext(ctx, shell, "-c", line)
}
