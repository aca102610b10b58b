// Package cmdconv 在 UNIX 与 Windows 两种环境变量语法之间转换命令行字符串。
//
// 识别的 UNIX 引用形式：
//
//   - $NAME
//   - ${NAME}
//   - ${NAME:default}
//
// NAME 满足 [A-Za-z_][A-Za-z0-9_]*，default 为原样文本，截止到第一个 "}"。
//
// # 语义说明
//
// 目标平台不是 Windows 时，命令原样返回（由真正的 shell 在执行时展开）。
//
// 目标平台是 Windows 时，每个引用按以下规则替换：
//
//  1. 变量存在且值非空 → %NAME%
//  2. 变量存在但值为空 → 空串
//  3. 变量不存在且带默认值 → 默认值原文
//  4. 变量不存在且无默认值 → 空串
//
// 已有的 %NAME% 保持原样；无法识别的写法（如未闭合的 "${NAME"）按字面量处理。
// normalize 为 true 时，替换完成后再去掉开头的一个 "./" 或 ".\"。
//
// # 快速开始
//
//	conv := cmdconv.New(platform.Fixed(true))
//	out := conv.Convert(`echo ${HOME} ${MODE:dev}`, map[string]string{"HOME": "/root"}, false)
//	// out == "echo %HOME% dev"
//
// 平台探测通过 [PlatformProbe] 注入，测试中无需修改全局状态。
package cmdconv
