package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/envvar"
)

// DefaultPaths 返回配置文件的默认搜索顺序，先命中的文件生效。
//
// 传入 appName 时依次为：
//  1. ./.appname.yaml
//  2. ~/.appname.yaml
//  3. /etc/appname/config.yaml
//
// 最后总是追加 config.yaml 与 config/config.yaml。
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 按 默认值 → 配置文件 → 环境变量(前缀) → CLI flags 的顺序合并配置。
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	if len(options.configPaths) == 0 {
		options.configPaths = DefaultPaths(options.appName)
	}

	configMap := structToMap(defaultConfig)

	fileMap, err := readFirstConfig(options)
	if err != nil {
		return nil, err
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
	}

	if options.envPrefix != "" {
		applyEnvBindings(configMap, options.envPrefix, collectScalarKeys(reflect.TypeOf(defaultConfig), ""))
	}

	if options.cmd != nil {
		applyCLIFlags(options.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的 CLI 版本，自动注入 [WithCommand] 与 [WithAppName]。
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "crossenv",
//	    cfgm.WithEnvPrefix("CROSSENV_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return Load(defaultConfig, append(baseOpts, opts...)...)
}

// readFirstConfig 读取搜索路径中第一个存在的配置文件。
//
// 没有找到任何文件时返回 nil, nil；文件存在但无法读取或解析时返回错误。
func readFirstConfig(o *options) (map[string]any, error) {
	for _, path := range o.resolvedPaths() {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}

			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}

		if !o.noTemplateExpansion {
			expandValues(fileMap, envvar.Environ(), o.rawKeys, "")
		}

		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return fileMap, nil
	}

	slog.Debug("No config file found, using defaults")

	return nil, nil
}

// expandValues 展开 m 中字符串值里的 ${VAR} / ${VAR:default}，rawKeys 下的子树原样保留。
func expandValues(m map[string]any, env map[string]string, rawKeys []string, prefix string) {
	for key, val := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if slices.Contains(rawKeys, path) {
			continue
		}
		m[key] = expandValue(val, env, rawKeys, path)
	}
}

func expandValue(val any, env map[string]string, rawKeys []string, path string) any {
	switch typed := val.(type) {
	case string:
		return envvar.Expand(typed, env)
	case map[string]any:
		expandValues(typed, env, rawKeys, path)
	case []any:
		for i := range typed {
			typed[i] = expandValue(typed[i], env, rawKeys, path)
		}
	}

	return val
}

// collectScalarKeys 收集可由单个字符串表示的叶子 key（如 shell.unix）。
//
// map 与 slice 字段无法从单个环境变量还原，不参与绑定。
func collectScalarKeys(typ reflect.Type, prefix string) []string {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		switch {
		case isStructType(field.Type):
			keys = append(keys, collectScalarKeys(field.Type, key)...)
		case field.Type.Kind() == reflect.Map, field.Type.Kind() == reflect.Slice:
		default:
			keys = append(keys, key)
		}
	}

	return keys
}

// envKeyFor 将配置 key 转为环境变量名：. 与 - 转为 _，整体大写并加前缀。
//
//	shell.unix (前缀 CROSSENV_) → CROSSENV_SHELL_UNIX
func envKeyFor(prefix, key string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

func applyEnvBindings(configMap map[string]any, prefix string, keys []string) {
	for _, key := range keys {
		envKey := envKeyFor(prefix, key)
		if val := os.Getenv(envKey); val != "" {
			setByPath(configMap, key, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", key)
		}
	}
}

// applyCLIFlags 将用户显式设置的 flags 写入配置 map。
//
// flag 名由配置 key 将 "." 替换为 "-" 得到，如 shell.unix → --shell-unix。
func applyCLIFlags(cmd *cli.Command, configMap map[string]any, typ reflect.Type, prefix string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			applyCLIFlags(cmd, configMap, field.Type, key)

			continue
		}

		flag := strings.ReplaceAll(key, ".", "-")
		if !cmd.IsSet(flag) {
			continue
		}
		setCLIFlagValue(cmd, configMap, key, flag, field.Type)
	}
}

func setCLIFlagValue(cmd *cli.Command, configMap map[string]any, key, flag string, fieldType reflect.Type) {
	if fieldType == reflect.TypeFor[time.Duration]() {
		setByPath(configMap, key, cmd.Duration(flag))

		return
	}

	switch fieldType.Kind() {
	case reflect.String:
		setByPath(configMap, key, cmd.String(flag))
	case reflect.Bool:
		setByPath(configMap, key, cmd.Bool(flag))
	case reflect.Int:
		setByPath(configMap, key, cmd.Int(flag))
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			setByPath(configMap, key, cmd.StringSlice(flag))
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			setByPath(configMap, key, cmd.StringMap(flag))
		}
	default:
		slog.Debug("Unsupported flag type, ignored", "flag", flag, "type", fieldType.String())
	}
}
