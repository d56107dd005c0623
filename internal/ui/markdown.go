package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderers are cached by style and wrap width; building one is not cheap.
var mdRenderers = map[string]*glamour.TermRenderer{}

// RenderMarkdown renders md with the glamour standard style, wrapped to width.
// On any renderer error the source text is returned unchanged.
func RenderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
