// Package config loads tool configuration from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls where map files live and how candidate names are checked.
type Config struct {
	// Directory is the managed directory holding map files. It is created
	// on first use.
	Directory string `yaml:"directory"`
	// Extension is the map file extension including the leading dot.
	Extension string `yaml:"extension"`
	// MaxNameLength is the maximum length of a resolved file name.
	// Zero disables the check.
	MaxNameLength int `yaml:"maxNameLength"`
	// ListColumns is the number of columns in the directory listing.
	ListColumns int `yaml:"listColumns"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Directory:     "./maps",
		Extension:     ".map",
		MaxNameLength: 30,
		ListColumns:   4,
	}
}

// DefaultPath returns the per-user config file location, or an empty string
// when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mapkeep.yaml")
}

// Load reads the YAML file at path and overlays it onto the defaults.
// A missing or empty path yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg.normalized()
}

// normalized fills empty fields with defaults and validates the rest.
func (c Config) normalized() (Config, error) {
	defaults := Default()

	if c.Directory == "" {
		c.Directory = defaults.Directory
	}
	if c.Extension == "" {
		c.Extension = defaults.Extension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.ListColumns <= 0 {
		c.ListColumns = defaults.ListColumns
	}
	if c.MaxNameLength < 0 {
		return Config{}, fmt.Errorf("maxNameLength must not be negative, got %d", c.MaxNameLength)
	}

	return c, nil
}
