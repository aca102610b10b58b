package cmdconv

import (
	"strings"

	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/platform"
)

// PlatformProbe 报告目标平台是否使用 Windows 变量语法。
type PlatformProbe func() bool

// Converter 按注入的平台探测结果转换命令字符串。
//
// Converter 不持有可变状态，可并发使用。
type Converter struct {
	probe PlatformProbe
}

// New 创建 Converter；probe 为 nil 时使用 [platform.IsWindows]。
func New(probe PlatformProbe) *Converter {
	if probe == nil {
		probe = platform.IsWindows
	}

	return &Converter{probe: probe}
}

// Convert 使用本机平台探测转换 command，等价于 New(nil).Convert。
func Convert(command string, variables map[string]string, normalize bool) string {
	return New(nil).Convert(command, variables, normalize)
}

// Convert 将 command 中的 UNIX 变量引用改写为目标平台语法。
//
// 探测函数每次调用只读取一次；非 Windows 目标原样返回 command，normalize 被忽略。
func (c *Converter) Convert(command string, variables map[string]string, normalize bool) string {
	if !c.probe() {
		return command
	}

	out := rewrite(command, Scan(command), func(tok Token) string {
		return Resolve(tok, variables).windowsText(tok.Name)
	})
	if normalize {
		out = stripRelativePrefix(out)
	}

	return out
}

// rewrite 用 replace 的结果替换 tokens 覆盖的区间，其余文本原样保留。
func rewrite(text string, tokens []Token, replace func(Token) string) string {
	if len(tokens) == 0 {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	last := 0
	for _, tok := range tokens {
		buf.WriteString(text[last:tok.Start])
		buf.WriteString(replace(tok))
		last = tok.End
	}
	buf.WriteString(text[last:])

	return buf.String()
}

// Rewrite 对 text 中每个引用调用 replace 并拼接结果。
//
// 供需要自定义替换规则的调用方（如配置文件展开）复用扫描逻辑。
func Rewrite(text string, replace func(Token) string) string {
	return rewrite(text, Scan(text), replace)
}

func stripRelativePrefix(s string) string {
	for _, prefix := range []string{"./", `.\`} {
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):]
		}
	}

	return s
}
