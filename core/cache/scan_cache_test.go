package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scriptdoc/scriptdoc/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func TestScanCache_HitAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "a.sh", "a() { :; }\n")
	sc := NewScanCache(DefaultCacheConfig())

	doc := &models.ScriptDoc{Path: path, Functions: []models.FunctionDoc{{Name: "a"}}}
	require.NoError(t, sc.Set(path, doc))

	got, ok := sc.ValidateAndGet(path)
	require.True(t, ok)
	assert.Equal(t, doc, got)

	sc.Invalidate(path)
	_, ok = sc.ValidateAndGet(path)
	assert.False(t, ok)
}

func TestScanCache_MissOnModifiedScript(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "a.sh", "a() { :; }\n")
	sc := NewScanCache(DefaultCacheConfig())

	require.NoError(t, sc.Set(path, &models.ScriptDoc{Path: path}))

	// Rewrite with different content and a different mtime.
	require.NoError(t, os.WriteFile(path, []byte("b() { :; }\n"), 0o755))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	_, ok := sc.ValidateAndGet(path)
	assert.False(t, ok)
}

func TestScanCache_MissOnDeletedScript(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "a.sh", "a() { :; }\n")
	sc := NewScanCache(DefaultCacheConfig())

	require.NoError(t, sc.Set(path, &models.ScriptDoc{Path: path}))
	require.NoError(t, os.Remove(path))

	_, ok := sc.ValidateAndGet(path)
	assert.False(t, ok)
}

func TestScanCache_EvictsAtCapacity(t *testing.T) {
	dir := t.TempDir()
	sc := NewScanCache(&CacheConfig{MaxEntries: 2, DefaultTTL: time.Hour})

	a := writeScript(t, dir, "a.sh", "a() { :; }\n")
	b := writeScript(t, dir, "b.sh", "b() { :; }\n")
	c := writeScript(t, dir, "c.sh", "c() { :; }\n")

	require.NoError(t, sc.Set(a, &models.ScriptDoc{Path: a}))
	require.NoError(t, sc.Set(b, &models.ScriptDoc{Path: b}))
	require.NoError(t, sc.Set(c, &models.ScriptDoc{Path: c}))

	metrics := sc.GetMetrics()
	assert.Equal(t, 2, metrics.TotalEntries)
}

func TestCacheMetrics_HitRate(t *testing.T) {
	m := &CacheMetrics{Hits: 3, Misses: 1}
	m.CalculateHitRate()
	assert.InDelta(t, 75.0, m.HitRate, 0.001)

	empty := &CacheMetrics{}
	empty.CalculateHitRate()
	assert.Zero(t, empty.HitRate)
}
