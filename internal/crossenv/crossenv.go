// Package crossenv 将命令行参数整理为可执行的调用：
// 解析前置的 NAME=value 赋值、组装环境变量，并按目标平台转换命令与参数。
package crossenv

import (
	"slices"

	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/cmdconv"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/envvar"
	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/platform"
)

// Options 控制 [Prepare] 的输入来源。
type Options struct {
	// Environ 为当前进程环境，也是赋值中 $VAR 引用的查找来源。
	Environ map[string]string
	// Defaults 为配置文件中的默认变量，优先级低于命令行赋值。
	Defaults map[string]string
	// Probe 报告目标平台是否为 Windows；nil 时使用本机平台。
	Probe func() bool
}

// Invocation 是整理后的调用。Command 为空表示没有需要执行的命令。
type Invocation struct {
	Command string
	Args    []string
	Env     map[string]string
	Setters map[string]string
	Windows bool
}

// Prepare 解析 args 并转换为目标平台的调用。
//
// 前置的 NAME=value 均视为赋值，第一个非赋值参数起为命令及其参数。
// 命令做 normalize 转换（去掉开头的 "./"），参数不做。
func Prepare(args []string, opts Options) Invocation {
	probe := opts.Probe
	if probe == nil {
		probe = platform.IsWindows
	}
	windows := probe()
	conv := cmdconv.New(platform.Fixed(windows))

	inv := Invocation{
		Env:     make(map[string]string, len(opts.Environ)+len(opts.Defaults)),
		Setters: make(map[string]string),
		Windows: windows,
	}
	for name, value := range opts.Environ {
		inv.Env[name] = value
	}
	for name, value := range opts.Defaults {
		inv.Env[name] = envvar.ConvertValue(name, value, opts.Environ, windows)
	}

	rest := args
	for len(rest) > 0 {
		name, value, ok := envvar.ParseAssignment(rest[0])
		if !ok {
			break
		}
		value = envvar.ConvertValue(name, value, opts.Environ, windows)
		inv.Env[name] = value
		inv.Setters[name] = value
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return inv
	}

	inv.Command = conv.Convert(envvar.UnescapeArg(rest[0]), inv.Env, true)
	inv.Args = make([]string, 0, len(rest)-1)
	for _, arg := range rest[1:] {
		inv.Args = append(inv.Args, conv.Convert(envvar.UnescapeArg(arg), inv.Env, false))
	}

	return inv
}

// Environ 以 NAME=value 形式返回环境变量，按名称排序。
func (inv Invocation) Environ() []string {
	names := make([]string, 0, len(inv.Env))
	for name := range inv.Env {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+"="+inv.Env[name])
	}

	return out
}
