package config

import (
	"strings"

	"github.com/idilsaglam/projects/internal/clierr"
)

// KeyMappings maps board actions to the keys that trigger them.
type KeyMappings struct {
	Up        []string `yaml:"up"`
	Down      []string `yaml:"down"`
	NextPanel []string `yaml:"next_panel"`
	Info      []string `yaml:"info"`
	Switch    []string `yaml:"switch"`
	Dismiss   []string `yaml:"dismiss"`
	GoTo      []string `yaml:"goto"`
	Help      []string `yaml:"help"`
	Quit      []string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key bindings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Up:        []string{"k", "up"},
		Down:      []string{"j", "down"},
		NextPanel: []string{"tab", "h", "l", "left", "right"},
		Info:      []string{"i"},
		Switch:    []string{"enter", "f"},
		Dismiss:   []string{"x"},
		GoTo:      []string{"g"},
		Help:      []string{"?"},
		Quit:      []string{"q", "ctrl+c"},
	}
}

// Validate rejects empty bindings and keys bound to two actions.
func (k KeyMappings) Validate() error {
	seen := map[string]string{}
	for _, b := range []struct {
		name string
		keys []string
	}{
		{"up", k.Up}, {"down", k.Down}, {"next_panel", k.NextPanel},
		{"info", k.Info}, {"switch", k.Switch}, {"dismiss", k.Dismiss},
		{"goto", k.GoTo}, {"help", k.Help}, {"quit", k.Quit},
	} {
		if len(b.keys) == 0 {
			return clierr.Newf(clierr.InvalidConfig, "key_mappings.%s has no keys", b.name)
		}
		for _, key := range b.keys {
			key = strings.TrimSpace(key)
			if key == "" {
				return clierr.Newf(clierr.InvalidConfig, "key_mappings.%s has an empty key", b.name)
			}
			if other, dup := seen[key]; dup {
				return clierr.Newf(clierr.InvalidConfig, "key %q is bound to both %s and %s", key, other, b.name)
			}
			seen[key] = b.name
		}
	}
	return nil
}
