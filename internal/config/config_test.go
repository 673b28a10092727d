package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentFile != "portfolio.yml" {
		t.Errorf("expected default content_file %q, got %q", "portfolio.yml", cfg.ContentFile)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.BasePath != "/" {
		t.Errorf("expected default base_path /, got %q", cfg.BasePath)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Serve.Port)
	}
	if !cfg.Serve.LiveReload {
		t.Error("live reload should default to on")
	}
	if len(cfg.Exclude) == 0 {
		t.Error("default excludes expected")
	}
}

func TestDefaultExcludesAreCopied(t *testing.T) {
	a := DefaultConfig()
	a.Exclude[0] = "changed"
	if DefaultConfig().Exclude[0] == "changed" {
		t.Error("DefaultConfig should not share its exclude slice")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.ContentFile = "cv/portfolio.yml"
	original.OutputDir = "site"
	original.BasePath = "/jobmarket/"
	original.SiteTitle = "Ada Example"
	original.Exclude = []string{"drafts/**"}
	original.Serve.Port = 9000
	original.Serve.LiveReload = false

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("config changed across save/load (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_OUTPUT_DIR", "public_html")
	t.Setenv("FOLIO_SERVE__PORT", "9090")
	t.Setenv("FOLIO_SERVE__LIVE_RELOAD", "false")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "public_html" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "public_html")
	}
	if loaded.Serve.Port != 9090 {
		t.Errorf("nested env override failed: got %d, want 9090", loaded.Serve.Port)
	}
	if loaded.Serve.LiveReload {
		t.Error("nested bool override failed")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"FOLIO_OUTPUT_DIR", "output_dir"},
		{"FOLIO_SERVE__PORT", "serve.port"},
		{"FOLIO_SERVE__ALLOW_ALL_ORIGINS", "serve.allow_all_origins"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty content file", func(c *Config) { c.ContentFile = "" }, "content_file"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"output equals static", func(c *Config) { c.OutputDir = "./public" }, "static_dir"},
		{"output inside static", func(c *Config) { c.StaticDir = "."; c.OutputDir = "dist" }, "static_dir"},
		{"output nested deeper", func(c *Config) { c.OutputDir = "public/site/out" }, "static_dir"},
		{"relative base path", func(c *Config) { c.BasePath = "site/" }, "base_path"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"negative port", func(c *Config) { c.Serve.Port = -1 }, "serve.port"},
		{"huge port", func(c *Config) { c.Serve.Port = 70000 }, "serve.port"},
		{"negative debounce", func(c *Config) { c.Serve.DebounceMillis = -5 }, "debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateOutputBesideStatic(t *testing.T) {
	tests := []struct{ static, output string }{
		{"public", "dist"},
		{"public", "public-dist"},
		{"site/public", "site"},
		{"", "."},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.StaticDir = tt.static
		cfg.OutputDir = tt.output
		if err := cfg.Validate(); err != nil {
			t.Errorf("static %q, output %q: unexpected error %v", tt.static, tt.output, err)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"drafts/**", []string{"drafts/**"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("splitAndTrim(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}
