package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SiteName != "mon-site" {
		t.Errorf("SiteName = %q, want mon-site", cfg.SiteName)
	}
	if cfg.Theme != "violet" {
		t.Errorf("Theme = %q, want violet", cfg.Theme)
	}
	if cfg.BorderRadius != "large" {
		t.Errorf("BorderRadius = %q, want large", cfg.BorderRadius)
	}
	if !reflect.DeepEqual(cfg.Sections, []string{"features", "howItWorks", "pricing", "faq"}) {
		t.Errorf("Sections = %v", cfg.Sections)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
	if cfg.Thinking.BaseMs != 600 || cfg.Thinking.JitterMs != 500 {
		t.Errorf("Thinking = %+v", cfg.Thinking)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)

	cfg := DefaultConfig()
	cfg.SiteName = "bulle"
	cfg.Theme = "pink"
	cfg.BorderRadius = "small"
	cfg.Sections = []string{"features", "faq"}
	cfg.HistoryLimit = 10

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load on a missing file should fall back to defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("theme: amber\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "amber" {
		t.Errorf("Theme = %q, want amber", cfg.Theme)
	}
	if cfg.SiteName != "mon-site" || cfg.HistoryLimit != 50 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ATELIER_THEME", "cyan")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "cyan" {
		t.Errorf("Theme = %q, env override should win over the file", cfg.Theme)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty site name", func(c *Config) { c.SiteName = "" }, true},
		{"unknown theme", func(c *Config) { c.Theme = "vantablack" }, true},
		{"unknown radius", func(c *Config) { c.BorderRadius = "round" }, true},
		{"empty radius allowed", func(c *Config) { c.BorderRadius = "" }, false},
		{"unknown section", func(c *Config) { c.Sections = []string{"testimonials"} }, true},
		{"hero listed", func(c *Config) { c.Sections = []string{"hero"} }, true},
		{"no extra sections", func(c *Config) { c.Sections = nil }, false},
		{"negative history", func(c *Config) { c.HistoryLimit = -1 }, true},
		{"negative thinking base", func(c *Config) { c.Thinking.BaseMs = -1 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSeedTypes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sections = []string{"features", "faq"}

	got := cfg.SeedTypes()
	if len(got) != 2 || string(got[0]) != "features" || string(got[1]) != "faq" {
		t.Errorf("SeedTypes = %v", got)
	}
}
