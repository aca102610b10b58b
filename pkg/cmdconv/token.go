package cmdconv

// TokenKind 标识 UNIX 变量引用的写法。
type TokenKind uint8

const (
	// Bare 为 $NAME。
	Bare TokenKind = iota + 1
	// Braced 为 ${NAME}。
	Braced
	// BracedWithDefault 为 ${NAME:default}。
	BracedWithDefault
)

func (k TokenKind) String() string {
	switch k {
	case Bare:
		return "bare"
	case Braced:
		return "braced"
	case BracedWithDefault:
		return "braced-with-default"
	}

	return "unknown"
}

// Token 是输入中的一个 UNIX 变量引用。
//
// Start/End 为字节偏移，input[Start:End] 即引用原文。
type Token struct {
	Kind    TokenKind
	Name    string
	Default string
	Start   int
	End     int
}

// Outcome 是变量查找的结果类别。
type Outcome uint8

const (
	// Present 变量存在（值可以为空）。
	Present Outcome = iota + 1
	// AbsentWithDefault 变量不存在，使用引用中的默认值。
	AbsentWithDefault
	// AbsentNoDefault 变量不存在且没有默认值。
	AbsentNoDefault
)

// Resolution 是单个 Token 的解析结果。
//
// Present 时 Value 为变量值；AbsentWithDefault 时为默认值；否则为空。
type Resolution struct {
	Outcome Outcome
	Value   string
}

// Resolve 在 vars 中查找 tok 引用的变量。
//
// 只看是否存在，不看值是否为空：存在但为空的变量仍是 Present，默认值不生效。
func Resolve(tok Token, vars map[string]string) Resolution {
	if val, ok := vars[tok.Name]; ok {
		return Resolution{Outcome: Present, Value: val}
	}
	if tok.Kind == BracedWithDefault {
		return Resolution{Outcome: AbsentWithDefault, Value: tok.Default}
	}

	return Resolution{Outcome: AbsentNoDefault}
}

// windowsText 返回 Windows 目标下替换 tok 的文本。
func (r Resolution) windowsText(name string) string {
	switch r.Outcome {
	case Present:
		if r.Value == "" {
			return ""
		}

		return "%" + name + "%"
	case AbsentWithDefault:
		return r.Value
	}

	return ""
}
