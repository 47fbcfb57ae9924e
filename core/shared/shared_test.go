package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo hi\n"), 0o755))

	resolved, err := ResolveScript(path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))

	_, err = ResolveScript(filepath.Join(dir, "missing.sh"))
	assert.Error(t, err)

	_, err = ResolveScript(dir)
	assert.Error(t, err)
}

func TestScriptName(t *testing.T) {
	assert.Equal(t, "deploy", ScriptName("/opt/scripts/deploy.sh"))
	assert.Equal(t, "setup", ScriptName("setup.bash"))
	assert.Equal(t, "run", ScriptName("/usr/local/bin/run"))
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "Deploy", ToTitle("deploy"))
	assert.Equal(t, "", ToTitle(""))
}
