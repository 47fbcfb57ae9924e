package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringChecks(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   \t"))
	assert.False(t, IsBlank("x"))

	assert.True(t, IsInteger("42"))
	assert.True(t, IsInteger(" -7 "))
	assert.False(t, IsInteger("4.2"))
	assert.False(t, IsInteger("abc"))

	assert.True(t, InRange(5, 1, 10))
	assert.True(t, InRange(1, 1, 10))
	assert.False(t, InRange(11, 1, 10))
}

func TestPathChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	executable := filepath.Join(dir, "run")
	require.NoError(t, os.WriteFile(executable, []byte("#!/bin/sh\n"), 0o755))

	assert.True(t, Exists(dir))
	assert.True(t, Exists(file))
	assert.False(t, Exists(filepath.Join(dir, "missing")))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))

	assert.True(t, IsExecutable(executable))
	assert.False(t, IsExecutable(file))

	assert.True(t, IsReadable(file))
	assert.False(t, IsReadable(filepath.Join(dir, "missing")))
}

func TestIsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	assert.True(t, IsSymlink(link))
	assert.False(t, IsSymlink(target))
}

func TestIsShellScript(t *testing.T) {
	dir := t.TempDir()
	extensions := []string{".sh", ".bash"}

	byExt := filepath.Join(dir, "deploy.sh")
	require.NoError(t, os.WriteFile(byExt, []byte("echo hi\n"), 0o644))

	byShebang := filepath.Join(dir, "deploy")
	require.NoError(t, os.WriteFile(byShebang, []byte("#!/usr/bin/env bash\necho hi\n"), 0o755))

	plain := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(plain, []byte("hello\n"), 0o644))

	python := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(python, []byte("#!/usr/bin/env python3\n"), 0o755))

	assert.True(t, IsShellScript(byExt, extensions))
	assert.True(t, IsShellScript(byShebang, extensions))
	assert.False(t, IsShellScript(plain, extensions))
	assert.False(t, IsShellScript(python, extensions))
	assert.False(t, IsShellScript(dir, extensions))
}
