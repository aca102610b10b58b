// Package config 提供 crossenv 的应用配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 或 .crossenv.yaml 等默认路径
//  3. 环境变量 - CROSSENV_ 前缀，仅标量字段
//  4. CLI flags - 根命令上显式设置的 flags
package config

// EnvPrefix 为配置项环境变量前缀。
const EnvPrefix = "CROSSENV_"

// Config 应用配置。
type Config struct {
	Platform string            `json:"platform" desc:"目标平台: auto / windows / unix"`
	Debug    bool              `json:"debug" desc:"输出调试日志"`
	Shell    ShellConfig       `json:"shell" desc:"shell 模式使用的解释器"`
	Env      map[string]string `json:"env" desc:"默认注入的环境变量，命令行赋值优先"`
	Scripts  map[string]string `json:"scripts" desc:"命名脚本，供 crossenv script 调用"`
}

// ShellConfig shell 模式配置。
//
// 路径在使用时按 ${VAR:default} 语法展开。
type ShellConfig struct {
	Unix    string `json:"unix" desc:"UNIX 平台的 shell"`
	Windows string `json:"windows" desc:"Windows 平台的 shell"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Platform: "auto",
		Shell: ShellConfig{
			Unix:    "/bin/sh",
			Windows: "${ComSpec:cmd.exe}",
		},
	}
}
