package cfgm

import (
	"path/filepath"

	"github.com/urfave/cli/v3"
)

// options 配置加载选项。
type options struct {
	appName             string // 应用名称，用于生成默认配置路径
	cmd                 *cli.Command
	configPaths         []string
	baseDir             string // 相对路径的解析基准，空串表示当前工作目录
	envPrefix           string
	noTemplateExpansion bool     // 是否禁用配置文件变量展开（默认启用）
	rawKeys             []string // 不做变量展开的 key（含其子树）
}

// Option 配置加载选项函数。
type Option func(*options)

// resolvedPaths 返回按 baseDir 解析后的搜索路径。
func (o *options) resolvedPaths() []string {
	if o.baseDir == "" {
		return o.configPaths
	}

	paths := make([]string, len(o.configPaths))
	for i, p := range o.configPaths {
		if filepath.IsAbs(p) {
			paths[i] = p
		} else {
			paths[i] = filepath.Join(o.baseDir, p)
		}
	}

	return paths
}

// WithCommand 绑定 CLI 命令，显式设置的 flags 覆盖其他来源（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径，覆盖默认路径。
//
// 空字符串会被忽略，便于直接传入未设置的 --config flag。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			if p != "" {
				o.configPaths = append(o.configPaths, p)
			}
		}
	}
}

// WithBaseDir 设置相对路径的解析基准，绝对路径不受影响。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
	}
}

// WithEnvPrefix 启用前缀环境变量覆盖。
//
// 示例 (前缀为 "CROSSENV_")：
//   - CROSSENV_PLATFORM → platform
//   - CROSSENV_SHELL_UNIX → shell.unix
//
// 仅绑定标量字段；map 与 slice 字段只能通过配置文件设置。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 禁用配置文件中 ${VAR} / ${VAR:default} 的展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// WithRawKeys 指定不做变量展开的配置 key，其下的值原样交给调用方。
//
// key 使用点分路径，如 "scripts"、"shell.unix"。
func WithRawKeys(keys ...string) Option {
	return func(o *options) {
		o.rawKeys = append(o.rawKeys, keys...)
	}
}
