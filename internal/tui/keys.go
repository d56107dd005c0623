package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/projects/internal/config"
)

type keyMap struct {
	Up, Down, NextPanel key.Binding
	Info, Switch        key.Binding
	Dismiss, GoTo       key.Binding
	Help, Quit          key.Binding
}

func bind(keys []string, desc string) key.Binding {
	label := ""
	if len(keys) > 0 {
		label = keys[0]
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up:        bind(km.Up, "up"),
		Down:      bind(km.Down, "down"),
		NextPanel: bind(km.NextPanel, "other list"),
		Info:      bind(km.Info, "more info"),
		Switch:    bind(km.Switch, "finish/activate"),
		Dismiss:   bind(km.Dismiss, "close info"),
		GoTo:      bind(km.GoTo, "go to id"),
		Help:      bind(km.Help, "help"),
		Quit:      bind(km.Quit, "quit"),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Info, k.Switch, k.Dismiss, k.NextPanel, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPanel, k.GoTo},
		{k.Info, k.Switch, k.Dismiss},
		{k.Help, k.Quit},
	}
}
