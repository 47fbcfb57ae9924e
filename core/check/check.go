package check

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Stateless boolean helpers used across the CLI for argument and path
// validation. Each wraps a single stdlib probe; none retains state.

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func IsInteger(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func InRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

func IsReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

func HasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// HasShellShebang reports whether the file starts with a `#!` interpreter
// line naming a shell. It reads at most the first line.
func HasShellShebang(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return false
	}
	line := sc.Text()
	if !strings.HasPrefix(line, "#!") {
		return false
	}
	return strings.Contains(line, "sh")
}

// IsShellScript is the walker's discovery predicate: a regular file with a
// known extension, or an extensionless one carrying a shell shebang.
func IsShellScript(path string, extensions []string) bool {
	if !IsFile(path) {
		return false
	}
	if HasExtension(path, extensions) {
		return true
	}
	return filepath.Ext(path) == "" && HasShellShebang(path)
}
