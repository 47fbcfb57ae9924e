package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name  string
		block string
		line  string
		want  string
	}{
		{name: "first fragment", block: "", line: "# Greets the user.", want: "Greets the user."},
		{name: "continuation gets indent", block: "Greets the user.", line: "# Args: none.", want: "Greets the user.\n    Args: none."},
		{name: "strips one space only", block: "", line: "#  double spaced", want: " double spaced"},
		{name: "no space after marker", block: "", line: "#tight", want: "tight"},
		{name: "indented comment line", block: "", line: "   # indented", want: "indented"},
		{name: "blank comment ignored", block: "kept", line: "#", want: "kept"},
		{name: "blank comment with space ignored", block: "kept", line: "# ", want: "kept"},
		{name: "dash rule ignored", block: "kept", line: "# ----------------", want: "kept"},
		{name: "equals rule ignored", block: "kept", line: "# ================", want: "kept"},
		{name: "hash rule ignored", block: "kept", line: "####", want: "kept"},
		{name: "mixed rule ignored", block: "", line: "# ==--==", want: ""},
		{name: "dash prose is kept", block: "", line: "# - first item", want: "- first item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accumulate(tt.block, tt.line))
		})
	}
}
