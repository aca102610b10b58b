// Package cfgm 提供分层配置加载。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置，命中首个文件即停止
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 启用，仅绑定标量字段
//  4. CLI flags - 通过 [WithCommand] 设置，仅采用用户显式设置的 flag
//
// # 快速开始
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "crossenv",
//	    cfgm.WithEnvPrefix("CROSSENV_"),
//	)
//
// # 变量展开
//
// 配置文件解析后，字符串值按 [envvar.Expand] 展开 $VAR、${VAR} 与 ${VAR:default}：
//
//	# .crossenv.yaml
//	shell:
//	  unix: "${SHELL:/bin/sh}"
//
// 使用 [WithoutTemplateExpansion] 可保留原文，[WithRawKeys] 只保留指定 key 下的值。
//
// [envvar.Expand]: github.com/lwmacct/251207-go-pkg-crossenv/pkg/envvar.Expand
package cfgm
