package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultsValidate asserts the default configuration passes its own
// validation.
func TestDefaultsValidate(t *testing.T) {
	cfg := NewDefault()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Page.Size != "A4" || !cfg.Fields.Chord {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestValidateRejectsBadValues covers the per-section validation rules.
func TestValidateRejectsBadValues(t *testing.T) {
	mutate := []func(*Config){
		func(c *Config) { c.Page.Size = "B3" },
		func(c *Config) { c.Page.Orientation = "diagonal" },
		func(c *Config) { c.Page.Scale = 0.1 },
		func(c *Config) { c.Page.Scale = 100 },
		func(c *Config) { c.App.HTTP.Port = 0 },
		func(c *Config) { c.App.HTTP.Port = 70000 },
		func(c *Config) { c.Font.WordSize = 500 },
	}
	for i, m := range mutate {
		cfg := NewDefault()
		m(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("mutation %d passed validation", i)
		}
	}
}

// TestLoadExpandsEnv asserts YAML loading with environment variable
// expansion and validation.
func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_FONT_PATH", "/tmp/test.ttf")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
page:
  size: A5
  orientation: landscape
  scale: 1.5
font:
  path: ${TEST_FONT_PATH}
fields:
  rhythm: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefault()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Page.Size != "A5" || cfg.Page.Orientation != "landscape" {
		t.Fatalf("page = %+v", cfg.Page)
	}
	if cfg.Font.Path != "/tmp/test.ttf" {
		t.Fatalf("font path = %q", cfg.Font.Path)
	}
	if !cfg.Fields.Rhythm {
		t.Fatalf("fields = %+v", cfg.Fields)
	}
	// Untouched sections keep their defaults.
	if cfg.App.HTTP.Port != 8080 {
		t.Fatalf("port = %d, want default", cfg.App.HTTP.Port)
	}
}

// TestLoadRejectsInvalid asserts a syntactically valid file that fails
// validation is reported.
func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page:\n  size: B3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewDefault()
	if err := Load(path, cfg); err == nil {
		t.Fatalf("invalid config loaded without error")
	}
}

// TestLoadOptionalMissingFile asserts a missing file leaves the defaults
// untouched.
func TestLoadOptionalMissingFile(t *testing.T) {
	cfg := NewDefault()
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), cfg); err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.Page.Size != "A4" {
		t.Fatalf("defaults touched: %+v", cfg.Page)
	}
}
