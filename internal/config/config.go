package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/atelier-studio/atelier/internal/site"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ATELIER_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: ATELIER_THEME -> theme, etc.
	if err := k.Load(env.Provider("ATELIER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ATELIER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validRadius is the set of recognized border radius values.
var validRadius = map[string]bool{
	string(site.RadiusNone):   true,
	string(site.RadiusSmall):  true,
	string(site.RadiusMedium): true,
	string(site.RadiusLarge):  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}

	if _, ok := site.Palettes[c.Theme]; !ok {
		return fmt.Errorf("invalid theme %q: must be one of %s", c.Theme, strings.Join(site.PaletteIDs, ", "))
	}

	if c.BorderRadius != "" && !validRadius[c.BorderRadius] {
		return fmt.Errorf("invalid border_radius %q: must be one of none, small, medium, large", c.BorderRadius)
	}

	for _, s := range c.Sections {
		t := site.SectionType(s)
		if !site.KnownType(t) {
			return fmt.Errorf("invalid section type %q", s)
		}
		if t == site.TypeHero {
			return fmt.Errorf("hero is seeded automatically and must not be listed in sections")
		}
	}

	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be non-negative")
	}
	if c.Thinking.BaseMs < 0 || c.Thinking.JitterMs < 0 {
		return fmt.Errorf("thinking delays must be non-negative")
	}

	return nil
}

// SeedTypes returns the configured extra sections as section types.
func (c *Config) SeedTypes() []site.SectionType {
	out := make([]site.SectionType, 0, len(c.Sections))
	for _, s := range c.Sections {
		out = append(out, site.SectionType(s))
	}
	return out
}
