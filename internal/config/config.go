// Package config loads the optional stampname configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mydehq/stampname/internal/types"
)

const appName = "stampname"

var defaults = types.Config{
	Formats: []string{"mp4"},
}

// DefaultConfig returns the built-in configuration. The returned value
// shares no memory with the package defaults.
func DefaultConfig() *types.Config {
	cfg := defaults
	cfg.Formats = slices.Clone(defaults.Formats)
	return &cfg
}

// Load reads the config at customPath, or the first config found in the
// standard locations when customPath is empty. A missing custom path is an
// error; missing standard files just mean defaults.
func Load(customPath string) (*types.Config, error) {
	cfg := DefaultConfig()

	path := customPath
	if path == "" {
		path = findGlobalConfig()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, types.ErrConfigNotFound{Path: path}
		}
		return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, types.ErrConfigInvalid{Path: path, Reason: err.Error()}
	}
	cfg.Path = path

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *types.Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	case ".yml", ".yaml", "":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// Validate checks the formats list
func Validate(cfg *types.Config) error {
	if len(cfg.Formats) == 0 {
		return types.ErrConfigInvalid{Path: cfg.Path, Reason: "formats must not be empty"}
	}
	for _, f := range cfg.Formats {
		if strings.TrimPrefix(f, ".") == "" {
			return types.ErrConfigInvalid{Path: cfg.Path, Reason: "formats must not contain empty entries"}
		}
		if strings.ContainsAny(f, `/\`) {
			return types.ErrConfigInvalid{Path: cfg.Path, Reason: fmt.Sprintf("format %q contains a path separator", f)}
		}
	}
	return nil
}

// findGlobalConfig searches for the config file in standard locations.
func findGlobalConfig() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}

	if xdgConfig != "" {
		for _, name := range []string{"config.yml", "config.yaml", "config.toml"} {
			path := filepath.Join(xdgConfig, appName, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	etcPath := filepath.Join("/etc", appName, "config.yml")
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}
