package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"midigen/config"
	"midigen/debug"
	"midigen/generator"
	"midigen/theme"
	"midigen/theory"
	"midigen/widgets"
)

type column int

const (
	colShape column = iota
	colRoot
	colMapping
	columnCount
)

var columnTitles = [columnCount]string{"shape", "root", "mapping"}

// visibleRows caps how many entries a column shows around its cursor
const visibleRows = 12

var shapes = []generator.Shape{generator.ShapeScale, generator.ShapeChord}

var keyHelp = []widgets.KeySection{
	{Keys: []widgets.KeyBinding{
		{Key: "h/l", Desc: "switch column"},
		{Key: "j/k", Desc: "move selection"},
		{Key: "enter/w", Desc: "write .mid file"},
		{Key: "q", Desc: "quit"},
	}},
}

// WrittenMsg reports the outcome of a file write
type WrittenMsg struct {
	Request generator.Request
	Path    string
	Result  *generator.Result
	Err     error
}

type Model struct {
	Theme  *theme.Theme
	Config *config.Config // may be nil; recent requests are not saved then
	OutDir string

	col      column
	cursor   [columnCount]int
	lastPath string
	err      error
	quitting bool
}

// NewModel builds a browser starting at the most recent request in cfg
func NewModel(th *theme.Theme, cfg *config.Config, outDir string) Model {
	m := Model{Theme: th, Config: cfg, OutDir: outDir}
	if cfg == nil {
		return m
	}
	if last, ok := cfg.LastRecent(); ok {
		m.restore(last)
	}
	return m
}

func (m *Model) restore(r config.RecentRequest) {
	req, err := generator.NewRequest(r.Shape, r.Root, r.Mapping)
	if err != nil || !req.Root.Valid() {
		return
	}
	for i, s := range shapes {
		if s == req.Shape {
			m.cursor[colShape] = i
		}
	}
	m.cursor[colRoot] = int(req.Root)
	for i, name := range m.mappings() {
		if name == req.Mapping {
			m.cursor[colMapping] = i
		}
	}
}

// Shape returns the selected shape
func (m Model) Shape() generator.Shape {
	return shapes[m.cursor[colShape]]
}

func (m Model) mappings() []string {
	var names []string
	if m.Shape() == generator.ShapeChord {
		for _, q := range theory.Qualities() {
			names = append(names, q.String())
		}
		return names
	}
	for _, mode := range theory.Modes() {
		names = append(names, mode.String())
	}
	return names
}

func (m Model) items(c column) []string {
	switch c {
	case colShape:
		out := make([]string, len(shapes))
		for i, s := range shapes {
			out[i] = s.String()
		}
		return out
	case colRoot:
		out := make([]string, 0, theory.RootCount)
		for _, r := range theory.Roots() {
			out = append(out, r.String())
		}
		return out
	default:
		return m.mappings()
	}
}

// Request returns the request for the current selection
func (m Model) Request() generator.Request {
	req, _ := generator.NewRequest(
		m.Shape().String(),
		theory.Root(m.cursor[colRoot]).String(),
		m.mappings()[m.cursor[colMapping]],
	)
	return req
}

// LastPath returns the most recently written file, if any
func (m Model) LastPath() string {
	return m.lastPath
}

func writeFile(dir string, req generator.Request) tea.Cmd {
	return func() tea.Msg {
		path, res, err := generator.WriteFile(dir, req)
		return WrittenMsg{Request: req, Path: path, Result: res, Err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "h", "left":
			if m.col > colShape {
				m.col--
			}

		case "l", "right":
			if m.col < colMapping {
				m.col++
			}

		case "j", "down":
			if m.cursor[m.col] < len(m.items(m.col))-1 {
				m.cursor[m.col]++
				m.shapeChanged()
			}

		case "k", "up":
			if m.cursor[m.col] > 0 {
				m.cursor[m.col]--
				m.shapeChanged()
			}

		case "enter", "w":
			req := m.Request()
			debug.Log("tui", "write %s %s %s", req.Shape, req.RootName, req.Mapping)
			return m, writeFile(m.OutDir, req)
		}

	case WrittenMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.lastPath = msg.Path
		if m.Config != nil {
			m.Config.AddRecent(config.RecentRequest{
				Shape:   msg.Request.Shape.String(),
				Root:    msg.Request.RootName,
				Mapping: msg.Request.Mapping,
			})
			m.err = m.Config.Save()
		}
	}

	return m, nil
}

// shapeChanged resets the mapping column when the shape moved under it
func (m *Model) shapeChanged() {
	if m.col == colShape {
		m.cursor[colMapping] = 0
	}
}

func (m Model) renderColumn(c column) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted()).Underline(true)
	if c == m.col {
		titleStyle = titleStyle.Foreground(m.Theme.Accent())
	}
	selStyle := lipgloss.NewStyle().Foreground(m.Theme.Cursor()).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	items := m.items(c)
	cur := m.cursor[c]
	start := max(0, min(cur-visibleRows/2, len(items)-visibleRows))
	end := min(len(items), start+visibleRows)

	lines := []string{titleStyle.Render(columnTitles[c])}
	for i := start; i < end; i++ {
		if i == cur {
			lines = append(lines, selStyle.Render(fmt.Sprintf("%c %s", m.Theme.Symbols.Cursor, items[i])))
		} else {
			lines = append(lines, itemStyle.Render("  "+items[i]))
		}
	}
	return lipgloss.NewStyle().Width(18).Render(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())
	okStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())

	req := m.Request()
	notes, warnings := generator.Notes(req)

	header := headerStyle.Render(fmt.Sprintf("midigen  %s", generator.Filename(req.RootName, req.Mapping)))
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(colShape),
		m.renderColumn(colRoot),
		m.renderColumn(colMapping),
	)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(columns)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderNoteNames(m.Theme, notes))
	out.WriteString("\n")
	out.WriteString(widgets.RenderKeyboard(m.Theme, notes))
	out.WriteString("\n")
	out.WriteString(widgets.RenderKeyboardLegend(m.Theme))
	out.WriteString("\n")

	for _, w := range warnings {
		out.WriteString(warnStyle.Render(w.String()))
		out.WriteString("\n")
	}

	switch {
	case m.err != nil:
		out.WriteString(warnStyle.Render("error: " + m.err.Error()))
		out.WriteString("\n")
	case m.lastPath != "":
		out.WriteString(okStyle.Render(fmt.Sprintf("Wrote %q", m.lastPath)))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keyHelp)))

	return out.String()
}
