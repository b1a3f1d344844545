package config

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".atelier.yml"

// DefaultSections are the catalogued sections seeded into a new
// document, in display order. The hero is always seeded first and is
// not listed here.
var DefaultSections = []string{"features", "howItWorks", "pricing", "faq"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:     "mon-site",
		Theme:        "violet",
		BorderRadius: "large",
		Sections:     append([]string(nil), DefaultSections...),
		HistoryLimit: 50,
		Thinking: Thinking{
			BaseMs:   600,
			JitterMs: 500,
		},
	}
}
