package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/models"
)

// ScanCache keeps one validated scan result per script path so repeated
// listings and watch-mode refreshes only rescan what changed.
type ScanCache struct {
	entries map[string]*models.CacheEntry
	config  *CacheConfig
	metrics *CacheMetrics
	mutex   sync.RWMutex
}

var (
	globalCache *ScanCache
	cacheOnce   sync.Once
)

func GetCache() *ScanCache {
	cacheOnce.Do(func() {
		globalCache = NewScanCache(DefaultCacheConfig())
	})
	return globalCache
}

func NewScanCache(config *CacheConfig) *ScanCache {
	cache := &ScanCache{
		entries: make(map[string]*models.CacheEntry),
		config:  config,
		metrics: &CacheMetrics{},
	}

	logger.Debug("Created scan cache with config: MaxEntries=%d, TTL=%v",
		config.MaxEntries, config.DefaultTTL)

	return cache
}

// ValidateAndGet returns the cached scan for scriptPath if the script on
// disk is unchanged and the entry has not aged out.
func (sc *ScanCache) ValidateAndGet(scriptPath string) (*models.ScriptDoc, bool) {
	sc.mutex.RLock()
	entry, exists := sc.entries[scriptPath]
	sc.mutex.RUnlock()

	if !exists {
		sc.incrementMisses()
		return nil, false
	}

	valid, err := entry.IsValid()
	if err != nil {
		logger.Debug("Cache validation error for %s: %v", scriptPath, err)
		sc.Invalidate(scriptPath)
		sc.incrementMisses()
		return nil, false
	}

	if !valid {
		logger.Debug("Cache miss for %s - script modified", scriptPath)
		sc.Invalidate(scriptPath)
		sc.incrementMisses()
		return nil, false
	}

	if time.Since(entry.CreatedAt) > sc.config.DefaultTTL {
		logger.Debug("Cache miss for %s - entry expired", scriptPath)
		sc.Invalidate(scriptPath)
		sc.incrementMisses()
		return nil, false
	}

	sc.incrementHits()
	logger.Debug("Cache hit for %s", scriptPath)
	return entry.ScriptDoc, true
}

func (sc *ScanCache) Set(scriptPath string, doc *models.ScriptDoc) error {
	entry, err := models.NewCacheEntry(scriptPath, doc)
	if err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}

	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if len(sc.entries) >= sc.config.MaxEntries {
		logger.Debug("Cache full, evicting oldest entry")
		sc.evictOldest()
	}

	sc.entries[scriptPath] = entry
	return nil
}

func (sc *ScanCache) Invalidate(scriptPath string) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if _, exists := sc.entries[scriptPath]; exists {
		delete(sc.entries, scriptPath)
		sc.metrics.Invalidations++
		logger.Debug("Invalidated cache entry for %s", scriptPath)
	}
}

func (sc *ScanCache) Clear() {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	count := len(sc.entries)
	sc.entries = make(map[string]*models.CacheEntry)
	sc.metrics.Invalidations += int64(count)
	logger.Debug("Cleared scan cache, invalidated %d entries", count)
}

func (sc *ScanCache) GetMetrics() *CacheMetrics {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()

	metrics := *sc.metrics
	metrics.TotalEntries = len(sc.entries)
	metrics.CalculateHitRate()
	return &metrics
}

func (sc *ScanCache) evictOldest() {
	var oldestPath string
	var oldestTime time.Time

	for path, entry := range sc.entries {
		if oldestPath == "" || entry.CreatedAt.Before(oldestTime) {
			oldestPath = path
			oldestTime = entry.CreatedAt
		}
	}

	if oldestPath != "" {
		delete(sc.entries, oldestPath)
		sc.metrics.Invalidations++
	}
}

func (sc *ScanCache) incrementHits() {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.metrics.Hits++
}

func (sc *ScanCache) incrementMisses() {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.metrics.Misses++
}
