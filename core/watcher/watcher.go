package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/scriptdoc/scriptdoc/core/cache"
	"github.com/scriptdoc/scriptdoc/core/check"
	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/models"
)

type ScriptWatcher interface {
	Watch() error
	Close() error
}

type ScriptWatcherImpl struct {
	FileWatcher *models.FileWatcher
	Extensions  []string
}

func NewScriptWatcher(rootDir string, excludePaths, extensions []string) (*ScriptWatcherImpl, error) {
	fw, err := models.NewFileWatcher(rootDir, excludePaths)
	if err != nil {
		return nil, fmt.Errorf("failed to create script watcher: %w", err)
	}
	return &ScriptWatcherImpl{
		FileWatcher: fw,
		Extensions:  extensions,
	}, nil
}

func (sw *ScriptWatcherImpl) Watch() error {
	if err := sw.addWatchersRecursively(sw.FileWatcher.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	if err := sw.FileWatcher.OnStart(); err != nil {
		logger.Error("Watcher.OnStart failed: %v", err)
	}

	for {
		select {
		case event, ok := <-sw.FileWatcher.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if sw.shouldExcludePath(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if check.HasExtension(event.Name, sw.Extensions) || check.IsShellScript(event.Name, sw.Extensions) {
					cache.GetCache().Invalidate(event.Name)
				}
			}

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					if !sw.shouldExcludePath(event.Name) {
						logger.Debug("Adding watcher for new directory: %s", event.Name)
						sw.FileWatcher.Watcher.Add(event.Name)
					}
				}
			}

			sw.debounceRescan()

		case err, ok := <-sw.FileWatcher.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (sw *ScriptWatcherImpl) debounceRescan() {
	sw.FileWatcher.Mutex.Lock()
	defer sw.FileWatcher.Mutex.Unlock()

	if sw.FileWatcher.DebounceTimer != nil {
		sw.FileWatcher.DebounceTimer.Stop()
	}

	sw.FileWatcher.DebounceTimer = time.AfterFunc(500*time.Millisecond, func() {
		logger.Debug("Script changes detected, rescanning...")
		if err := sw.FileWatcher.OnChange(); err != nil {
			logger.Error("Watcher.OnChange failed: %v", err)
		}
	})
}

func (sw *ScriptWatcherImpl) Close() error {
	sw.FileWatcher.Mutex.Lock()
	defer sw.FileWatcher.Mutex.Unlock()

	if sw.FileWatcher.DebounceTimer != nil {
		sw.FileWatcher.DebounceTimer.Stop()
	}

	if err := sw.FileWatcher.OnClose(); err != nil {
		logger.Error("Watcher.OnClose failed: %v", err)
	}

	return sw.FileWatcher.Watcher.Close()
}

func (sw *ScriptWatcherImpl) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(sw.FileWatcher.RootDir, path)
	if err != nil {
		return false
	}

	relPath = filepath.Clean(relPath)

	for _, excludePath := range sw.FileWatcher.ExcludePaths {
		excludePath = filepath.Clean(excludePath)

		if relPath == excludePath {
			return true
		}
		if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func (sw *ScriptWatcherImpl) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if sw.shouldExcludePath(path) && path != root {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		if err := sw.FileWatcher.Watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
