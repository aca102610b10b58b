//go:build windows

package runner

import (
	"context"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// Windows 控制台会把 Ctrl+C 同时发给子进程，这里只需避免父进程先退出。
var forwardedSignals = []os.Signal{os.Interrupt}

func interruptedBySIGINT(*os.ProcessState) bool {
	return false
}

// shellCommand 以 cmd.exe /d /s /c "line" 的原始命令行启动，保留 line 中的引号。
func shellCommand(ctx context.Context, shell, line string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: windows.EscapeArg(shell) + ` /d /s /c "` + line + `"`,
	}

	return cmd
}
