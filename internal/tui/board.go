package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/config"
	"github.com/idilsaglam/projects/internal/dom"
	"github.com/idilsaglam/projects/internal/model"
	"github.com/idilsaglam/projects/internal/project"
	"github.com/idilsaglam/projects/internal/ui"
)

const (
	itemIndent = 2
	// panel border + title line
	panelChrome = 3
	// status line + help line
	footerHeight = 2
)

var panels = [2]project.ListType{project.Active, project.Finished}

func panelIndex(t project.ListType) int {
	if t == project.Finished {
		return 1
	}
	return 0
}

// Options configure the board.
type Options struct {
	Keys   config.KeyMappings
	Logger *slog.Logger
}

// Model is the Bubble Tea model for the board. Key presses become clicks
// on the page's controls; the page is the only source of truth.
type Model struct {
	app  *project.App
	doc  *dom.Document
	log  *slog.Logger
	keys keyMap
	help help.Model

	// go-to-id prompt
	jumping bool
	input   textinput.Model

	focus   project.ListType
	cursors [2]int

	width, height int

	status    string
	statusErr bool
}

// New builds the board model over app.
func New(app *project.App, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.Keys.Quit) == 0 {
		opts.Keys = config.DefaultKeyMappings()
	}
	m := Model{
		app:    app,
		doc:    app.Document(),
		log:    opts.Logger,
		keys:   newKeyMap(opts.Keys),
		help:   help.New(),
		focus:  project.Active,
		width:  80,
		height: 24,
	}
	m.help.Styles.ShortKey = ui.StylesFor(ui.Current()).Accent
	m.input = textinput.New()
	m.input.Prompt = "go to> "
	m.input.Placeholder = "project id"
	m.input.CharLimit = 64
	m.layout()
	return m
}

// Run starts the interactive board.
func Run(app *project.App, opts Options) error {
	p := tea.NewProgram(New(app, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Focus() project.ListType { return m.focus }
func (m Model) Cursor() int             { return m.cursors[panelIndex(m.focus)] }
func (m Model) Status() string          { return m.status }

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		m.status, m.statusErr = "", false

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.NextPanel):
			m.focus = m.focus.Other()
			m.clamp()
		case key.Matches(msg, m.keys.Info):
			if it := m.selected(); it != nil {
				m.click(it.InfoButton())
			}
		case key.Matches(msg, m.keys.Switch):
			if it := m.selected(); it != nil {
				id := it.ID()
				if m.click(it.SwitchButton()) {
					m.status = fmt.Sprintf("%s → %s", id, it.Type())
				}
			}
		case key.Matches(msg, m.keys.Dismiss):
			if it := m.selected(); it != nil && it.Tooltip() != nil {
				m.click(it.Tooltip().Node())
			}
		case key.Matches(msg, m.keys.GoTo):
			m.jumping = true
			m.input.SetValue("")
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		id := strings.TrimSpace(m.input.Value())
		m.jumping = false
		m.input.Blur()
		if id != "" {
			m.jump(id)
		}
		m.layout()
		return m, nil
	case tea.KeyEsc:
		m.jumping = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// click dispatches a click on n and reports whether it went through.
func (m *Model) click(n *html.Node) bool {
	// boxes must be current: tooltips read their owner's layout on creation
	m.layout()
	err := m.doc.Click(n)
	if s := m.doc.TakeScrolled(); s != nil {
		m.layout()
		m.reveal(s)
	}
	m.clamp()
	// the source list may have shrunk under its scroll offset
	if it := m.selected(); it != nil {
		m.layout()
		m.reveal(it.Element())
	}
	if err != nil {
		m.fail(err)
		return false
	}
	return true
}

func (m *Model) fail(err error) {
	m.log.Warn("board action failed", "error", err)
	m.statusErr = true
	var ce *clierr.Error
	if errors.As(err, &ce) {
		m.status = ce.Message
		return
	}
	m.status = err.Error()
}

func (m *Model) jump(id string) {
	it, err := m.app.Find(id)
	if err != nil {
		m.fail(err)
		return
	}
	m.focus = it.Type()
	m.cursors[panelIndex(m.focus)] = slices.Index(m.app.List(m.focus).IDs(), id)
	m.layout()
	m.reveal(it.Element())
}

func (m *Model) move(delta int) {
	i := panelIndex(m.focus)
	m.cursors[i] += delta
	m.clamp()
	if it := m.selected(); it != nil {
		m.layout()
		m.reveal(it.Element())
	}
}

func (m *Model) clamp() {
	for i, t := range panels {
		n := m.app.List(t).Len()
		if m.cursors[i] >= n {
			m.cursors[i] = n - 1
		}
		if m.cursors[i] < 0 {
			m.cursors[i] = 0
		}
	}
}

func (m Model) selected() *project.ListItem {
	items := m.app.List(m.focus).Items()
	c := m.cursors[panelIndex(m.focus)]
	if c < 0 || c >= len(items) {
		return nil
	}
	return items[c]
}

// reveal scrolls whichever list holds el so that el is visible.
func (m *Model) reveal(el *html.Node) {
	for _, t := range panels {
		l := m.app.List(t)
		for _, it := range l.Items() {
			if it.Element() != el {
				continue
			}
			b := m.doc.Box(el)
			top, visible := l.ScrollTop(), m.visibleRows()
			switch {
			case b.Top < top:
				top = b.Top
			case b.Top+b.Height > top+visible:
				top = b.Top + b.Height - visible
			}
			_ = l.SetScrollTop(top)
			return
		}
	}
}

func (m Model) visibleRows() int {
	v := m.height - footerHeight - panelChrome
	if v < 1 {
		v = 1
	}
	return v
}

func (m Model) panelWidth() int {
	w := m.width / 2
	if w < 20 {
		w = 20
	}
	return w
}

// content width inside a panel's border and padding
func (m Model) innerWidth() int { return m.panelWidth() - 4 }

// layout records every project's box. It shares listLines with View so the
// two cannot disagree.
func (m Model) layout() {
	for _, t := range panels {
		m.listLines(t)
	}
}

func (m Model) listLines(t project.ListType) []string {
	l := m.app.List(t)
	w := m.innerWidth()
	cursor := m.cursors[panelIndex(t)]
	var lines []string
	for i, it := range l.Items() {
		p := it.Snapshot()
		block := m.renderItem(p, t == m.focus && i == cursor, w)
		l.SetBox(p.ID, dom.Box{Left: itemIndent, Top: len(lines), Height: len(block)})
		lines = append(lines, block...)
		if p.Tooltip != nil {
			lines = append(lines, renderCard(*p.Tooltip, w)...)
		}
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		lines = append(lines, ui.StylesFor(ui.Current()).Muted.Render("  (empty)"))
	}
	return lines
}

func (m Model) renderItem(p model.Project, selected bool, width int) []string {
	s := ui.StylesFor(ui.Current())
	th := ui.Current()

	sym := s.Pending.Render(th.SymActive)
	title := p.Title
	if p.Finished() {
		sym = s.Success.Render(th.SymDone)
		title = s.Done.Render(title)
	}
	prefix := strings.Repeat(" ", itemIndent)
	if selected {
		prefix = s.Selected.Render(">") + " "
	}
	pad := strings.Repeat(" ", itemIndent)

	desc := p.Description
	if limit := width - itemIndent; limit > 1 && lipgloss.Width(desc) > limit {
		desc = truncate(desc, limit)
	}
	controls := fmt.Sprintf("[%s] [%s]", "More Info", p.Action)
	if p.Tooltip != nil {
		controls = fmt.Sprintf("[%s] [%s]", s.Muted.Render("More Info"), p.Action)
	}
	return []string{
		prefix + sym + " " + title + " " + s.Muted.Render("#"+p.ID),
		pad + s.Muted.Render(desc),
		pad + s.Accent.Render(controls),
	}
}

// renderCard draws a tooltip as a card indented to its computed x offset.
// The card sits in flow under its project; the y offset is informational.
func renderCard(t model.Tooltip, width int) []string {
	th := ui.Current()
	s := ui.StylesFor(th)
	x := t.X
	if x < 0 {
		x = 0
	}
	inner := width - x - 4
	if inner < 10 {
		inner = 10
	}
	text := ui.RenderMarkdown(t.Text, th.MarkdownStyle, inner)
	var body []string
	for _, ln := range strings.Split(text, "\n") {
		body = append(body, strings.TrimRight(ln, " "))
	}
	card := s.Card.Render(strings.Join(body, "\n"))
	out := strings.Split(card, "\n")
	indent := strings.Repeat(" ", x)
	for i := range out {
		out[i] = indent + out[i]
	}
	return out
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

func (m Model) View() string {
	s := ui.StylesFor(ui.Current())
	visible := m.visibleRows()

	var rendered []string
	for _, t := range panels {
		l := m.app.List(t)
		lines := m.listLines(t)
		top := max(0, min(l.ScrollTop(), len(lines)-visible))
		end := top + visible
		if end > len(lines) {
			end = len(lines)
		}
		title := fmt.Sprintf("%s Projects (%d)", titleCase(string(t)), l.Len())
		rendered = append(rendered, ui.Panel(title, lines[top:end], m.panelWidth(), t == m.focus))
	}
	body := ui.SideBySide(rendered...)

	active, finished := m.app.List(project.Active).Len(), m.app.List(project.Finished).Len()
	status := s.Muted.Render(ui.ProgressBar(finished, active+finished, 20) + " finished")
	if m.status != "" {
		if m.statusErr {
			status = s.Error.Render(m.status)
		} else {
			status = s.Success.Render(m.status)
		}
	}
	footer := m.help.View(m.keys)
	if m.jumping {
		footer = m.input.View()
	}
	return body + "\n" + status + "\n" + footer
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
