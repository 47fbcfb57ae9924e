package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptdoc/scriptdoc/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Prefix restricts extraction to functions carrying it and is stripped
	// from displayed names.
	Prefix     string   `yaml:"prefix"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
}

func Default() *Config {
	return &Config{
		Extensions: []string{".sh", ".bash"},
		Exclude:    []string{".git", "node_modules", "vendor"},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	paths := []string{
		filepath.Join(wd, "scriptdoc.yaml"),
		filepath.Join(wd, ".scriptdoc.yaml"),
	}

	var filePath string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			filePath = p
			break
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

// ApplyOverride assigns a single key=value override to its typed field. Keys
// outside the fixed allow-list are rejected; values are never evaluated or
// interpolated.
func (c *Config) ApplyOverride(key, value string) error {
	switch key {
	case "prefix":
		c.Prefix = value
	case "extensions":
		c.Extensions = splitList(value)
	case "exclude":
		c.Exclude = splitList(value)
	default:
		return fmt.Errorf("unknown config key %q (allowed: prefix, extensions, exclude)", key)
	}
	return nil
}

// ApplyOverrides parses a batch of `key=value` pairs. A pair without `=` is
// treated as setting the key to the empty string.
func (c *Config) ApplyOverrides(pairs []string) error {
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		if err := c.ApplyOverride(key, value); err != nil {
			return err
		}
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
