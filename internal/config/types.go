package config

// Config is the top-level editor configuration, corresponding to
// .atelier.yml. It only shapes new sessions (seed document, theme,
// timings); nothing here is part of the site document itself.
type Config struct {
	SiteName     string   `yaml:"site_name" koanf:"site_name"`
	Theme        string   `yaml:"theme" koanf:"theme"`
	BorderRadius string   `yaml:"border_radius" koanf:"border_radius"`
	Sections     []string `yaml:"sections" koanf:"sections"`
	HistoryLimit int      `yaml:"history_limit" koanf:"history_limit"`
	Thinking     Thinking `yaml:"thinking" koanf:"thinking"`
}

// Thinking controls the artificial assistant reply delay, in
// milliseconds: a fixed base plus uniform jitter.
type Thinking struct {
	BaseMs   int `yaml:"base_ms" koanf:"base_ms"`
	JitterMs int `yaml:"jitter_ms" koanf:"jitter_ms"`
}
