package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runExtract(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(append([]string{"extract"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTestScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greet.sh")
	content := "# Greets the user.\n" +
		"# Args: none.\n" +
		"hello() {\n" +
		"  :\n" +
		"}\n" +
		"bye() { :; }\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func TestExtractCommand(t *testing.T) {
	path := writeTestScript(t)

	out, err := runExtract(t, path)
	require.NoError(t, err)
	assert.Equal(t, "  hello\n    Greets the user.\n    Args: none.\n\n  bye\n", out)
}

func TestExtractCommand_TargetFilter(t *testing.T) {
	path := writeTestScript(t)

	out, err := runExtract(t, path, "hello")
	require.NoError(t, err)
	assert.Equal(t, "  hello\n    Greets the user.\n    Args: none.\n\n", out)

	out, err = runExtract(t, path, "nothere")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtractCommand_MissingScript(t *testing.T) {
	_, err := runExtract(t, filepath.Join(t.TempDir(), "missing.sh"))
	assert.Error(t, err)
}
