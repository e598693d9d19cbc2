package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if cfg.Organize.Placeholder != "Unknown" {
		t.Fatalf("placeholder = %q, want Unknown", cfg.Organize.Placeholder)
	}
	if cfg.Organize.MaxComponentLength != 200 {
		t.Fatalf("max component length = %d, want 200", cfg.Organize.MaxComponentLength)
	}
	if cfg.Split.MaxBytes != int64(1)<<30 {
		t.Fatalf("split max bytes = %d, want 1 GiB", cfg.Split.MaxBytes)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[log]
level = "debug"

[organize]
placeholder = "Misc"
max_component_length = 120

[cache]
enabled = true
path = "` + filepath.Join(dir, "cache", "fp.db") + `"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.Organize.Placeholder != "Misc" || cfg.Organize.MaxComponentLength != 120 {
		t.Fatalf("organize section not applied: %+v", cfg.Organize)
	}
	// Blank fields still pick up defaults after normalization.
	if cfg.Log.Format != "auto" {
		t.Fatalf("log format = %q, want auto", cfg.Log.Format)
	}
	if !filepath.IsAbs(cfg.Cache.Path) {
		t.Fatalf("cache path not normalized: %q", cfg.Cache.Path)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"format", func(c *Config) { c.Log.Format = "yaml" }, "log.format"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"component length", func(c *Config) { c.Organize.MaxComponentLength = 4 }, "max_component_length"},
		{"placeholder", func(c *Config) { c.Organize.Placeholder = "a/b" }, "placeholder"},
		{"cache path", func(c *Config) { c.Cache.Enabled = true; c.Cache.Path = " " }, "cache.path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
