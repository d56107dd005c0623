package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/projects/internal/component"
	"github.com/idilsaglam/projects/internal/config"
	"github.com/idilsaglam/projects/internal/dom"
	"github.com/idilsaglam/projects/internal/project"
	"github.com/idilsaglam/projects/internal/store/htmlstore"
	"github.com/idilsaglam/projects/internal/ui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	ui.SetTheme("mono")
	os.Exit(m.Run())
}

func newBoard(t *testing.T) (Model, *project.App) {
	t.Helper()
	doc, err := htmlstore.Default()
	require.NoError(t, err)
	return newBoardOn(t, doc, config.DefaultKeyMappings(), 40)
}

func newBoardOn(t *testing.T, doc *dom.Document, keys config.KeyMappings, height int) (Model, *project.App) {
	t.Helper()
	app, err := project.NewApp(doc, project.Options{
		Logger:  slog.New(slog.DiscardHandler),
		Tooltip: component.TooltipOptions{OffsetX: 2},
	})
	require.NoError(t, err)

	m := New(app, Options{Keys: keys, Logger: slog.New(slog.DiscardHandler)})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: height})
	return updated.(Model), app
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestBoard_Navigation(t *testing.T) {
	m, _ := newBoard(t)

	assert.Equal(t, project.Active, m.Focus())
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "j")
	assert.Equal(t, 1, m.Cursor())

	// no wrap at the bottom
	m = press(t, m, "j")
	assert.Equal(t, 1, m.Cursor())

	m = press(t, m, "tab")
	assert.Equal(t, project.Finished, m.Focus())
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "k")
	assert.Equal(t, 0, m.Cursor())
}

func TestBoard_SwitchMovesProject(t *testing.T) {
	m, app := newBoard(t)

	m = press(t, m, "f")
	assert.Equal(t, []string{"p2"}, app.List(project.Active).IDs())
	assert.Equal(t, []string{"p3", "p1"}, app.List(project.Finished).IDs())
	assert.Equal(t, "p1 → finished", m.Status())

	// the cursor stays on the active list, now on p2
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "tab", "j", "enter")
	assert.Equal(t, []string{"p2", "p1"}, app.List(project.Active).IDs())
	assert.Equal(t, []string{"p3"}, app.List(project.Finished).IDs())
	assert.Equal(t, 0, m.Cursor())
}

func TestBoard_SwitchLastProjectClampsCursor(t *testing.T) {
	m, app := newBoard(t)

	m = press(t, m, "j", "f")
	assert.Equal(t, 0, m.Cursor())
	m = press(t, m, "f")
	assert.Equal(t, 0, app.List(project.Active).Len())

	// nothing selected: switch is a no-op
	m = press(t, m, "f")
	assert.Equal(t, 3, app.List(project.Finished).Len())
	assert.Contains(t, m.View(), "(empty)")
}

func TestBoard_InfoAndDismiss(t *testing.T) {
	m, app := newBoard(t)
	p1, err := app.Find("p1")
	require.NoError(t, err)

	m = press(t, m, "i", "i")
	assert.True(t, p1.HasActiveTooltip())
	assert.Equal(t, 1, strings.Count(m.View(), "lifetime access"))

	// the card sits under p1, indented to the tooltip's x offset
	x, _ := p1.Tooltip().Position()
	assert.Equal(t, 4, x)

	m = press(t, m, "x")
	assert.False(t, p1.HasActiveTooltip())
	assert.NotContains(t, m.View(), "lifetime access")
}

func TestBoard_TooltipTracksOwnerLayout(t *testing.T) {
	m, app := newBoard(t)

	m = press(t, m, "j", "i")
	p2, _ := app.Find("p2")
	require.NotNil(t, p2.Tooltip())

	box := app.Document().Box(p2.Element())
	_, y := p2.Tooltip().Position()
	assert.Equal(t, box.Top+box.Height, y)
	assert.Greater(t, box.Top, 0)
}

func TestBoard_GoTo(t *testing.T) {
	m, _ := newBoard(t)

	m = press(t, m, "g", "p", "3", "enter")
	assert.Equal(t, project.Finished, m.Focus())
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "g", "p", "9", "enter")
	assert.Equal(t, `no project "p9"`, m.Status())

	m = press(t, m, "g", "p", "esc")
	assert.Equal(t, project.Finished, m.Focus())
}

func TestBoard_Quit(t *testing.T) {
	m, _ := newBoard(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoard_View(t *testing.T) {
	m, _ := newBoard(t)
	out := m.View()

	assert.Contains(t, out, "Active Projects (2)")
	assert.Contains(t, out, "Finished Projects (1)")
	assert.Contains(t, out, "Finish the Course")
	assert.Contains(t, out, "[More Info] [Finish]")
	assert.Contains(t, out, "[More Info] [Activate]")
	assert.Contains(t, out, "1/3 finished")
}

func TestBoard_ScrollRevealsSelection(t *testing.T) {
	m, app := newBoard(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 9})
	m = updated.(Model)

	// four visible rows: p2 starts at row 4 and needs scrolling
	m = press(t, m, "j")
	assert.Greater(t, app.List(project.Active).ScrollTop(), 0)

	m = press(t, m, "k")
	assert.Equal(t, 0, app.List(project.Active).ScrollTop())
}

// longPage has n active projects t0..t(n-1) and no finished ones.
func longPage(t *testing.T, n int) *dom.Document {
	t.Helper()
	var b strings.Builder
	b.WriteString(`<html><body><section id="active-projects"><ul>`)
	for i := range n {
		fmt.Fprintf(&b, `<li id="t%d" data-extra-info="info %d"><h2>Task %d</h2><p>Task number %d</p>`+
			`<button>More Info</button><button>Finish</button></li>`, i, i, i, i)
	}
	b.WriteString(`</ul></section><section id="finished-projects"><ul></ul></section></body></html>`)
	doc, err := dom.ParseString(b.String())
	require.NoError(t, err)
	return doc
}

func TestBoard_SwitchFromBottomOfScrolledList(t *testing.T) {
	m, app := newBoardOn(t, longPage(t, 10), config.DefaultKeyMappings(), 24)
	active := app.List(project.Active)

	m = press(t, m, "j", "j", "j", "j", "j", "j", "j", "j", "j")
	assert.Equal(t, 9, m.Cursor())
	require.Greater(t, active.ScrollTop(), 0)

	m = press(t, m, "f", "f", "f", "f", "f")
	assert.Equal(t, []string{"t0", "t1", "t2", "t3", "t4"}, active.IDs())
	assert.Equal(t, 4, m.Cursor())

	// the selected project is back in view
	sel, err := app.Find("t4")
	require.NoError(t, err)
	box := app.Document().Box(sel.Element())
	assert.LessOrEqual(t, active.ScrollTop(), box.Top)

	out := m.View()
	for i := range 5 {
		assert.Contains(t, out, fmt.Sprintf("Task %d ", i))
	}
}

func TestBoard_ScrollOffsetPastEndStillShowsRows(t *testing.T) {
	m, app := newBoardOn(t, longPage(t, 3), config.DefaultKeyMappings(), 24)
	require.NoError(t, app.List(project.Active).SetScrollTop(100))

	out := m.View()
	for i := range 3 {
		assert.Contains(t, out, fmt.Sprintf("Task %d ", i))
	}
}

func TestBoard_HelpKeyFromConfig(t *testing.T) {
	doc, err := htmlstore.Default()
	require.NoError(t, err)
	keys := config.DefaultKeyMappings()
	keys.Help = []string{"H"}
	m, _ := newBoardOn(t, doc, keys, 40)

	short := m.View()
	m = press(t, m, "H")
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "go to id")

	// "?" no longer toggles anything
	m = press(t, m, "H", "?")
	assert.Equal(t, short, m.View())
}
