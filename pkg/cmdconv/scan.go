package cmdconv

import "strings"

func isVarNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isVarNameChar(ch byte) bool {
	return isVarNameStart(ch) || (ch >= '0' && ch <= '9')
}

// scanName 返回从 start 开始的变量名结束位置；start 处不是合法首字符时返回 start。
func scanName(text string, start int) int {
	if start >= len(text) || !isVarNameStart(text[start]) {
		return start
	}
	i := start + 1
	for i < len(text) && isVarNameChar(text[i]) {
		i++
	}

	return i
}

// Scan 从左到右找出 text 中所有不重叠的 UNIX 变量引用。
//
// 无法识别的 "$" 按字面量跳过，扫描从下一个字节继续。
func Scan(text string) []Token {
	var tokens []Token
	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			i++
			continue
		}

		tok, ok := scanAt(text, i)
		if !ok {
			i++
			continue
		}
		tokens = append(tokens, tok)
		i = tok.End
	}

	return tokens
}

// scanAt 尝试在 text[i]（必须是 "$"）处识别一个引用。
func scanAt(text string, i int) (Token, bool) {
	if text[i+1] != '{' {
		end := scanName(text, i+1)
		if end == i+1 {
			return Token{}, false
		}

		return Token{Kind: Bare, Name: text[i+1 : end], Start: i, End: end}, true
	}

	nameStart := i + 2
	nameEnd := scanName(text, nameStart)
	if nameEnd == nameStart || nameEnd >= len(text) {
		return Token{}, false
	}
	name := text[nameStart:nameEnd]

	switch text[nameEnd] {
	case '}':
		return Token{Kind: Braced, Name: name, Start: i, End: nameEnd + 1}, true
	case ':':
		closing := strings.IndexByte(text[nameEnd+1:], '}')
		if closing == -1 {
			return Token{}, false
		}
		closing += nameEnd + 1

		return Token{
			Kind:    BracedWithDefault,
			Name:    name,
			Default: text[nameEnd+1 : closing],
			Start:   i,
			End:     closing + 1,
		}, true
	}

	return Token{}, false
}
