// Package envvar 处理命令行中的变量赋值与变量值。
//
// 包含三部分：
//   - NAME=value 赋值解析与参数反转义
//   - 赋值值的转换（路径分隔符、$VAR 引用）
//   - 基于 cmdconv 引用语法的 UNIX 侧展开，用于配置文件
package envvar

import (
	"os"
	"regexp"
	"strings"

	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/cmdconv"
)

// pathLikeVars 中的变量值是路径列表，需要按平台改写分隔符。
var pathLikeVars = map[string]bool{
	"PATH":      true,
	"NODE_PATH": true,
}

var (
	listDelimiterRe = regexp.MustCompile(`(\\*):`)
	valueRefRe      = regexp.MustCompile(`(\\*)(\$(\w+)|\$\{(\w+)\})`)
)

// Environ 返回当前进程环境变量的快照。
func Environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = value
	}

	return vars
}

func isWordChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_'
}

// ParseAssignment 解析 NAME=value 形式的参数。
//
// NAME 由字母、数字与下划线组成；value 若被成对的单引号或双引号包裹则去掉引号。
func ParseAssignment(arg string) (string, string, bool) {
	i := 0
	for i < len(arg) && isWordChar(arg[i]) {
		i++
	}
	if i == 0 || i >= len(arg) || arg[i] != '=' {
		return "", "", false
	}

	name := arg[:i]
	value := arg[i+1:]
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '\'' || first == '"') {
			value = value[1 : len(value)-1]
		}
	}

	return name, value, true
}

// UnescapeArg 还原命令参数中的转义。
//
// 规则：
//   - `\\` → `\`
//   - `\'` → `'`
//   - 未转义的 `'` 被删除
//   - `$` 或 `"` 之前的 `\` 被删除
func UnescapeArg(arg string) string {
	if !strings.ContainsAny(arg, `\'`) {
		return arg
	}

	var buf strings.Builder
	buf.Grow(len(arg))

	for i := 0; i < len(arg); i++ {
		ch := arg[i]
		switch {
		case ch == '\\' && i+1 < len(arg) && (arg[i+1] == '\\' || arg[i+1] == '\''):
			buf.WriteByte(arg[i+1])
			i++
		case ch == '\\' && i+1 < len(arg) && (arg[i+1] == '$' || arg[i+1] == '"'):
			// 丢弃反斜杠，下一个字符照常输出
		case ch == '\'':
		default:
			buf.WriteByte(ch)
		}
	}

	return buf.String()
}

// ConvertValue 转换赋值语句中的变量值。
//
// PATH、NODE_PATH 中未转义的 ":" 在 Windows 上改为 ";"，"\:" 还原为 ":"。
// 随后 $VAR 与 ${VAR} 按 env 替换（不存在为空串）；
// 前面有奇数个反斜杠的引用保持字面量，反斜杠数量减半。
func ConvertValue(name, value string, env map[string]string, windows bool) string {
	if pathLikeVars[name] {
		value = replaceListDelimiters(value, windows)
	}

	return resolveValueRefs(value, env)
}

func replaceListDelimiters(value string, windows bool) string {
	sep := ":"
	if windows {
		sep = ";"
	}

	return listDelimiterRe.ReplaceAllStringFunc(value, func(match string) string {
		slashes := match[:len(match)-1]
		if len(slashes)%2 == 1 {
			return match[1:]
		}

		return slashes + sep
	})
}

func resolveValueRefs(value string, env map[string]string) string {
	matches := valueRefRe.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value
	}

	var buf strings.Builder
	buf.Grow(len(value))

	last := 0
	for _, m := range matches {
		buf.WriteString(value[last:m[0]])

		slashes := value[m[2]:m[3]]
		buf.WriteString(slashes[:len(slashes)/2])
		if len(slashes)%2 == 1 {
			buf.WriteString(value[m[4]:m[5]])
		} else {
			nameStart, nameEnd := m[6], m[7]
			if nameStart < 0 {
				nameStart, nameEnd = m[8], m[9]
			}
			buf.WriteString(env[value[nameStart:nameEnd]])
		}
		last = m[1]
	}
	buf.WriteString(value[last:])

	return buf.String()
}

// Expand 以 UNIX 语义展开 text 中的 $NAME、${NAME} 与 ${NAME:default}。
//
// 变量存在时替换为其值（可为空），不存在时使用默认值或空串。
func Expand(text string, env map[string]string) string {
	return cmdconv.Rewrite(text, func(tok cmdconv.Token) string {
		return cmdconv.Resolve(tok, env).Value
	})
}
