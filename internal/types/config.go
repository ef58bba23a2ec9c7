package types

import "strings"

// Config represents the stampname configuration file
type Config struct {
	Formats     []string `yaml:"formats" toml:"formats"`             // Extensions without dot, e.g. "mp4"
	SelfName    string   `yaml:"self_name" toml:"self_name"`         // Empty means the executable name
	Confirm     bool     `yaml:"confirm" toml:"confirm"`             // Ask before applying renames
	PauseOnExit bool     `yaml:"pause_on_exit" toml:"pause_on_exit"` // Wait for Enter before exiting
	Path        string   `yaml:"-" toml:"-"`                         // File the config was loaded from
}

// HasFormat reports whether the file name ends in one of the configured
// extensions, ignoring case.
func (c *Config) HasFormat(name string) bool {
	name = strings.ToLower(name)
	for _, f := range c.Formats {
		f = strings.TrimPrefix(f, ".")
		if f != "" && strings.HasSuffix(name, "."+strings.ToLower(f)) {
			return true
		}
	}
	return false
}
