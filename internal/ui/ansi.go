package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ApplyColorProfile picks the colour profile for lipgloss output.
// disable (or NO_COLOR) forces plain text.
func ApplyColorProfile(disable bool) {
	if disable || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// OK prints a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, StylesFor(current).Success.Render(current.SymDone+" "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, StylesFor(current).Error.Render("✖ "+msg))
}
