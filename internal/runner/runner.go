// Package runner 启动子进程并转发信号与退出码。
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
)

// Command 描述要启动的子进程。
type Command struct {
	Name string
	Args []string
	Env  []string
}

// Options 控制子进程的启动方式。
type Options struct {
	// Shell 非空时使用该解释器执行 Name 与 Args 拼接成的命令行。
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run 启动 c 并等待其结束，返回子进程退出码。
//
// 子进程被信号终止时：SIGINT 视为 0，其余信号视为 1。
// 进程无法启动时返回错误。
func Run(ctx context.Context, c Command, opts Options) (int, error) {
	cmd := build(ctx, c, opts)
	// 与 Windows 的查找规则一致，允许解析到当前目录中的可执行文件
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}
	cmd.Env = c.Env
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start %s: %w", c.Name, err)
	}
	slog.Debug("Process started", "pid", cmd.Process.Pid, "path", cmd.Path, "shell", opts.Shell != "")

	stop := forwardSignals(cmd.Process)
	defer stop()

	return exitCode(cmd.Wait())
}

func build(ctx context.Context, c Command, opts Options) *exec.Cmd {
	if opts.Shell == "" {
		return exec.CommandContext(ctx, c.Name, c.Args...)
	}

	line := strings.Join(append([]string{c.Name}, c.Args...), " ")

	return shellCommand(ctx, opts.Shell, line)
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 1, fmt.Errorf("wait: %w", err)
	}

	if code := exitErr.ExitCode(); code >= 0 {
		return code, nil
	}
	if interruptedBySIGINT(exitErr.ProcessState) {
		return 0, nil
	}

	return 1, nil
}

// forwardSignals 将收到的终止类信号转发给子进程，返回的函数用于停止转发。
func forwardSignals(proc *os.Process) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, forwardedSignals...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				if err := proc.Signal(sig); err != nil {
					slog.Debug("Signal forward failed", "signal", sig.String(), "error", err)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
