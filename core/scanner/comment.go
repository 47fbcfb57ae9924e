package scanner

import "strings"

// continuationIndent is the fixed indent carried by every comment line after
// the first inside an accumulated block.
const continuationIndent = "    "

// Accumulate folds one raw comment line into the block built so far and
// returns the updated block. Decorative separator lines and blank comment
// lines contribute nothing.
func Accumulate(block, line string) string {
	fragment := cleanComment(line)
	if fragment == "" || isDecorative(fragment) {
		return block
	}

	if block == "" {
		return fragment
	}
	return block + "\n" + continuationIndent + fragment
}

// cleanComment strips leading whitespace, the `#` marker and at most one
// space after it.
func cleanComment(line string) string {
	s := strings.TrimLeft(line, " \t")
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, " ")
	return s
}

// isDecorative reports whether a cleaned fragment is ruling, like `----` or
// `====` or a run of extra `#` markers, rather than prose.
func isDecorative(fragment string) bool {
	return strings.Trim(fragment, "#-=") == ""
}
