package shared

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scriptdoc/scriptdoc/core/check"
)

// ResolveScript turns a script argument into an absolute path and validates
// it is a readable regular file.
func ResolveScript(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve script path %s: %w", arg, err)
	}
	if !check.IsFile(path) {
		return "", fmt.Errorf("script %s is not a regular file", path)
	}
	if !check.IsReadable(path) {
		return "", fmt.Errorf("script %s is not readable", path)
	}
	return path, nil
}

// ScriptName is the display name of a script: its base name without a shell
// extension.
func ScriptName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".sh", ".bash"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

func ToTitle(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
