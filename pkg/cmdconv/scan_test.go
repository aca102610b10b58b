package cmdconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/cmdconv"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []cmdconv.Token
	}{
		{
			name: "bare",
			text: `echo $HOME/bin`,
			want: []cmdconv.Token{{Kind: cmdconv.Bare, Name: "HOME", Start: 5, End: 10}},
		},
		{
			name: "braced",
			text: `${A}${B_2}`,
			want: []cmdconv.Token{
				{Kind: cmdconv.Braced, Name: "A", Start: 0, End: 4},
				{Kind: cmdconv.Braced, Name: "B_2", Start: 4, End: 10},
			},
		},
		{
			name: "default stops at first closing brace",
			text: `${A:x}y}`,
			want: []cmdconv.Token{{Kind: cmdconv.BracedWithDefault, Name: "A", Default: "x", Start: 0, End: 6}},
		},
		{
			name: "malformed forms are skipped",
			text: `$ $1 ${ ${9} ${A-b} ${A`,
			want: nil,
		},
		{
			name: "scan resumes after malformed dollar",
			text: `$$X`,
			want: []cmdconv.Token{{Kind: cmdconv.Bare, Name: "X", Start: 1, End: 3}},
		},
		{
			name: "windows syntax is not a token",
			text: `%PATH%`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cmdconv.Scan(tt.text))
		})
	}
}

func TestResolve(t *testing.T) {
	vars := map[string]string{"SET": "v", "EMPTY": ""}

	tests := []struct {
		name string
		tok  cmdconv.Token
		want cmdconv.Resolution
	}{
		{
			name: "present",
			tok:  cmdconv.Token{Kind: cmdconv.Bare, Name: "SET"},
			want: cmdconv.Resolution{Outcome: cmdconv.Present, Value: "v"},
		},
		{
			name: "present empty ignores default",
			tok:  cmdconv.Token{Kind: cmdconv.BracedWithDefault, Name: "EMPTY", Default: "d"},
			want: cmdconv.Resolution{Outcome: cmdconv.Present, Value: ""},
		},
		{
			name: "absent with default",
			tok:  cmdconv.Token{Kind: cmdconv.BracedWithDefault, Name: "NOPE", Default: "d"},
			want: cmdconv.Resolution{Outcome: cmdconv.AbsentWithDefault, Value: "d"},
		},
		{
			name: "absent",
			tok:  cmdconv.Token{Kind: cmdconv.Braced, Name: "NOPE"},
			want: cmdconv.Resolution{Outcome: cmdconv.AbsentNoDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cmdconv.Resolve(tt.tok, vars))
		})
	}
}

func TestRewrite(t *testing.T) {
	got := cmdconv.Rewrite(`a=$A b=${B:2}`, func(tok cmdconv.Token) string {
		return "<" + tok.Kind.String() + ":" + tok.Name + ">"
	})
	assert.Equal(t, `a=<bare:A> b=<braced-with-default:B>`, got)
}
