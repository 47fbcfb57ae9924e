package scanner

import "strings"

type LineKind int

const (
	LineOther LineKind = iota
	LineComment
	LineFuncInline
	LineFuncBare
	LineBrace
)

func (k LineKind) String() string {
	switch k {
	case LineComment:
		return "comment"
	case LineFuncInline:
		return "func-inline"
	case LineFuncBare:
		return "func-bare"
	case LineBrace:
		return "brace"
	default:
		return "other"
	}
}

// Classify buckets a single source line. Priority matters: a commented-out
// function header is still a comment, and a lone `{` is only meaningful when
// the line holds nothing else.
func Classify(line string) LineKind {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "#") {
		return LineComment
	}

	if isFuncStart(trimmed) {
		if strings.Contains(trimmed, "{") {
			return LineFuncInline
		}
		return LineFuncBare
	}

	if trimmed == "{" {
		return LineBrace
	}

	return LineOther
}

func isFuncStart(trimmed string) bool {
	if rest, ok := strings.CutPrefix(trimmed, "function"); ok {
		if rest != "" && (rest[0] == ' ' || rest[0] == '\t') && strings.TrimSpace(rest) != "" {
			return true
		}
	}
	return strings.Contains(trimmed, "()")
}
