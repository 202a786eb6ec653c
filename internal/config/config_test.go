package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if !cfg.Enabled("scorpio") || cfg.Enabled("leo") {
		t.Fatalf("unexpected enabled signs: %v", cfg.EnabledSigns)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
port = "9000"
dataset = "data/h.json"
enabled_signs = ["Scorpio", "leo"]
rate_limit = 5
rate_burst = 10
`)
	t.Setenv("PORT", "7777")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7777" {
		t.Fatalf("PORT env should override file, got %q", cfg.Port)
	}
	if cfg.Dataset != "data/h.json" || cfg.RateLimit != 5 || cfg.RateBurst != 10 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.BodyFont != "resources/fonts/Gideon.ttf" {
		t.Fatalf("defaults should survive partial files, got %q", cfg.BodyFont)
	}
	if !cfg.Enabled("leo") || !cfg.Enabled("scorpio") {
		t.Fatalf("expected leo and scorpio enabled: %v", cfg.EnabledSigns)
	}
}

func TestLoadRejectsUnknownSign(t *testing.T) {
	path := writeConfig(t, `enabled_signs = ["ophiuchus"]`)
	if _, err := Load(path); !errors.Is(err, ErrUnknownSign) {
		t.Fatalf("expected ErrUnknownSign, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
