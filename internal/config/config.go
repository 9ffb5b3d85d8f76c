// Package config loads minic.yaml (SPEC_FULL's Configuration section),
// grounded on the teacher's internal/ext.LoadConfig/ParseConfig
// read-then-yaml.Unmarshal shape for its own funxy.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is minic.yaml's top-level shape.
type Config struct {
	// Entry overrides the file passed on the command line.
	Entry string `yaml:"entry,omitempty"`

	// Strict is parsed from minic.yaml, but nothing reads it; checker
	// behaviour does not depend on it.
	Strict bool `yaml:"strict,omitempty"`

	// CacheDir is where the sqlite compile cache lives, relative to the
	// config file's directory.
	CacheDir string `yaml:"cacheDir,omitempty"`
}

const defaultCacheDir = ".minic-cache"

// Default returns the config used when no minic.yaml is present: every
// field is zero except CacheDir, which is ".minic-cache".
func Default() *Config {
	return &Config{CacheDir: defaultCacheDir}
}

// Load reads and parses path. A missing file is not an error — it
// returns Default() (spec_full — "missing file or fields is not an
// error").
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses minic.yaml content from bytes, filling in default field
// values left unset.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir
	}
	return cfg, nil
}
