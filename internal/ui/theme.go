package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Color
	Border                                        lipgloss.Color

	Box                lipgloss.Border
	SymActive, SymDone string

	// MarkdownStyle is the glamour standard style for tooltip text.
	MarkdownStyle string
}

var current = themeFor("classic")

// SetTheme switches the theme used by every renderer.
func SetTheme(name string) { current = themeFor(name) }

// Current exposes what renderers need
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "13", Muted: "8", Accent: "14",
			Success: "10", Error: "9", Pending: "11",
			Border:    "13",
			Box:       lipgloss.RoundedBorder(),
			SymActive: "◻", SymDone: "◼",
			MarkdownStyle: "dracula",
		}
	case "mono":
		return Theme{
			Name:      "mono",
			Box:       lipgloss.NormalBorder(),
			SymActive: "-", SymDone: "x",
			MarkdownStyle: "notty",
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: "", Muted: "8", Accent: "12",
			Success: "42", Error: "9", Pending: "214",
			Border:    "8",
			Box:       lipgloss.RoundedBorder(),
			SymActive: "•", SymDone: "✔",
			MarkdownStyle: "dark",
		}
	}
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help, Card                    lipgloss.Style
	Panel, FocusedPanel                           lipgloss.Style
}

// StylesFor derives the styles for t. Empty colours leave the terminal default.
func StylesFor(t Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(c)
		}
		return s
	}
	panel := lipgloss.NewStyle().Border(t.Box).Padding(0, 1)
	focused := panel
	if t.Border != "" {
		panel = panel.BorderForeground(t.Border)
		focused = focused.BorderForeground(t.Accent)
	} else {
		focused = focused.Border(lipgloss.DoubleBorder())
	}
	return Styles{
		Title:        fg(t.Title).Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       fg(t.Accent),
		Success:      fg(t.Success),
		Error:        fg(t.Error).Bold(true),
		Pending:      fg(t.Pending),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Pending).Padding(0, 1),
		Panel:        panel,
		FocusedPanel: focused,
	}
}
