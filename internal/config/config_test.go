package config_test

import (
	"path/filepath"
	"testing"

	"github.com/funvibe/minic/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("expected missing config file to not be an error, got %v", err)
	}
	if cfg.CacheDir != ".minic-cache" {
		t.Errorf("expected default cache dir, got %q", cfg.CacheDir)
	}
	if cfg.Entry != "" || cfg.Strict {
		t.Errorf("expected zero-value entry/strict fields, got %+v", cfg)
	}
}

func TestParseFillsInDefaultCacheDir(t *testing.T) {
	cfg, err := config.Parse([]byte("entry: main.lang\nstrict: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Entry != "main.lang" {
		t.Errorf("expected entry main.lang, got %q", cfg.Entry)
	}
	if !cfg.Strict {
		t.Error("expected strict to be true")
	}
	if cfg.CacheDir != ".minic-cache" {
		t.Errorf("expected default cache dir when unset, got %q", cfg.CacheDir)
	}
}

func TestParseHonorsExplicitCacheDir(t *testing.T) {
	cfg, err := config.Parse([]byte("cacheDir: build/cache\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CacheDir != "build/cache" {
		t.Errorf("expected explicit cache dir to be honored, got %q", cfg.CacheDir)
	}
}

func TestParseRejectsMalformedYaml(t *testing.T) {
	if _, err := config.Parse([]byte("entry: [unterminated\n")); err == nil {
		t.Error("expected malformed yaml to produce an error")
	}
}
