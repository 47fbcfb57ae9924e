package models

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"time"
)

type CacheEntry struct {
	ScriptPath string     `json:"script_path"`
	ModTime    time.Time  `json:"mod_time"`
	FileHash   string     `json:"file_hash"`
	ScriptDoc  *ScriptDoc `json:"script_doc"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewCacheEntry(scriptPath string, doc *ScriptDoc) (*CacheEntry, error) {
	stat, err := os.Stat(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat script %s: %w", scriptPath, err)
	}

	hash, err := hashFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to hash script %s: %w", scriptPath, err)
	}

	return &CacheEntry{
		ScriptPath: scriptPath,
		ModTime:    stat.ModTime(),
		FileHash:   hash,
		ScriptDoc:  doc,
		CreatedAt:  time.Now(),
	}, nil
}

// IsValid reports whether the cached scan still matches the script on disk.
// An unchanged mtime short-circuits; otherwise the content hash decides.
func (ce *CacheEntry) IsValid() (bool, error) {
	stat, err := os.Stat(ce.ScriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat script %s: %w", ce.ScriptPath, err)
	}

	if stat.ModTime().Equal(ce.ModTime) {
		return true, nil
	}

	currentHash, err := hashFile(ce.ScriptPath)
	if err != nil {
		return false, fmt.Errorf("failed to hash script %s: %w", ce.ScriptPath, err)
	}

	if currentHash == ce.FileHash {
		ce.ModTime = stat.ModTime()
		return true, nil
	}

	return false, nil
}

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
