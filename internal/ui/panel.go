package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with a done/total count.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel frames lines under a title using the current theme. width <= 0
// sizes the panel to its content.
func Panel(title string, lines []string, width int, focused bool) string {
	s := StylesFor(current)
	style := s.Panel
	if focused {
		style = s.FocusedPanel
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	body := append([]string{s.Title.Render(title)}, lines...)
	return style.Render(strings.Join(body, "\n"))
}

// SideBySide joins rendered panels horizontally, top aligned.
func SideBySide(panels ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}
