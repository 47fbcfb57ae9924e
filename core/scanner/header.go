package scanner

import "strings"

// ResolveName extracts the bare function name from a header line. It
// recognizes, in order: `function name(...)`, `function name`, and `name()`.
// Lines matching none of the forms resolve to "". The keyword forms are
// checked first so that `function name()` never mis-splits on the paren form.
func ResolveName(line string) string {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}

	if fields[0] == "function" {
		if len(fields) < 2 {
			return ""
		}
		return stripParens(fields[1])
	}

	if strings.Contains(trimmed, "()") {
		return stripParens(fields[0])
	}

	return ""
}

// stripParens drops everything from the opening paren on and squeezes any
// whitespace left inside the candidate.
func stripParens(token string) string {
	if i := strings.Index(token, "("); i >= 0 {
		token = token[:i]
	}
	return strings.Join(strings.Fields(token), "")
}
