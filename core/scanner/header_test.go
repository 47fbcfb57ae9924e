package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "keyword with parens", line: "function deploy() {", want: "deploy"},
		{name: "keyword with glued brace", line: "function deploy(){", want: "deploy"},
		{name: "keyword without parens", line: "function deploy", want: "deploy"},
		{name: "keyword without parens inline", line: "function deploy {", want: "deploy"},
		{name: "paren form", line: "deploy() {", want: "deploy"},
		{name: "paren form bare", line: "deploy()", want: "deploy"},
		{name: "paren form one-liner", line: "plain() { :; }", want: "plain"},
		{name: "indented header", line: "   nested() {", want: "nested"},
		{name: "space before parens", line: "deploy ()", want: "deploy"},
		{name: "keyword beats paren split", line: "function util_log() { echo; }", want: "util_log"},
		{name: "keyword alone", line: "function", want: ""},
		{name: "empty line", line: "", want: ""},
		{name: "no recognized form", line: "echo hi", want: ""},
		{name: "lone brace", line: "{", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveName(tt.line))
		})
	}
}
