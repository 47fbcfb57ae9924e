package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptdoc/scriptdoc/core/cache"
	"github.com/scriptdoc/scriptdoc/core/check"
	"github.com/scriptdoc/scriptdoc/core/config"
	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/models"
	"github.com/scriptdoc/scriptdoc/core/scanner"
	"github.com/scriptdoc/scriptdoc/core/shared"
)

type ScriptWalker interface {
	Walk(root string) ([]*models.ScriptDoc, error)
}

type ScriptWalkerImpl struct {
	Config *config.Config
	Filter scanner.Filter
	Cache  *cache.ScanCache
}

func NewScriptWalker(cfg *config.Config) *ScriptWalkerImpl {
	return &ScriptWalkerImpl{
		Config: cfg,
		Filter: scanner.Filter{Prefix: cfg.Prefix},
		Cache:  cache.GetCache(),
	}
}

// Walk discovers every shell script under root and returns its scan result,
// in walk order. Cached results are reused when the script is unchanged.
func (w *ScriptWalkerImpl) Walk(root string) ([]*models.ScriptDoc, error) {
	var docs []*models.ScriptDoc

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if relPath != "." && w.excluded(relPath) {
				logger.Debug("Excluding directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if !check.IsShellScript(path, w.Config.Extensions) {
			return nil
		}

		doc, err := w.scan(path)
		if err != nil {
			return err
		}
		doc.RelPath = relPath
		doc.Name = shared.ScriptName(path)
		docs = append(docs, doc)

		logger.Debug("Discovered script: %s (%d documented functions)", relPath, len(doc.Functions))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return docs, nil
}

func (w *ScriptWalkerImpl) scan(path string) (*models.ScriptDoc, error) {
	if doc, ok := w.Cache.ValidateAndGet(path); ok {
		return doc, nil
	}

	doc, err := scanner.ScanFile(path, w.Filter)
	if err != nil {
		return nil, err
	}

	if err := w.Cache.Set(path, doc); err != nil {
		logger.Debug("Failed to cache scan for %s: %v", path, err)
	}
	return doc, nil
}

func (w *ScriptWalkerImpl) excluded(relPath string) bool {
	for _, ex := range w.Config.Exclude {
		ex = filepath.Clean(ex)
		if relPath == ex || strings.HasPrefix(relPath, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
