package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/projects/internal/clierr"
)

// Config represents the application configuration
type Config struct {
	// Page is the HTML page holding the board. Empty means projects.html in
	// the working directory, or the built-in page.
	Page     string `yaml:"page"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	Theme    string `yaml:"theme"`

	Tooltip     TooltipConfig `yaml:"tooltip"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
}

// TooltipConfig places a tooltip relative to its project, in terminal cells.
type TooltipConfig struct {
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

var themes = []string{"classic", "neon", "mono"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Theme:       "classic",
		Tooltip:     TooltipConfig{OffsetX: 2, OffsetY: 0},
		KeyMappings: DefaultKeyMappings(),
	}
}

// Load reads the config at path. An empty path falls back to
// $PROJECTS_CONFIG and then to the user's config directory.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = strings.TrimSpace(os.Getenv("PROJECTS_CONFIG"))
		explicit = path != ""
	}
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, clierr.Newf(clierr.InvalidConfig, "read config %s: %v", path, err).
			WithDetails(map[string]any{"path": path})
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, clierr.Newf(clierr.InvalidConfig, "parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values a YAML file could get wrong.
func (c *Config) Validate() error {
	known := false
	for _, t := range themes {
		if strings.EqualFold(c.Theme, t) {
			known = true
		}
	}
	if !known {
		return clierr.Newf(clierr.InvalidConfig, "unknown theme %q (want one of %s)", c.Theme, strings.Join(themes, ", "))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return clierr.Newf(clierr.InvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return c.KeyMappings.Validate()
}

// getConfigPath returns $XDG_CONFIG_HOME/projects/config.yaml, defaulting
// XDG_CONFIG_HOME to ~/.config.
func getConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "projects", "config.yaml"), nil
}
