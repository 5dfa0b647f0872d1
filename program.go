package mpctui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameMsg asks the model to step one frame.
type frameMsg struct{}

// Model runs an App inside a bubbletea program. Frames are stepped on a
// fixed tick; key presses are queued on the App's MemSurface and consumed by
// the following frame, the same way a polling terminal would deliver them.
//
// usage:
//
//	model, err := NewModel(DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
type Model struct {
	app      *App
	surface  *MemSurface
	interval time.Duration
	renderer *lipgloss.Renderer
	err      error
}

// NewModel creates a model whose App draws cfg's form.
func NewModel(cfg Config) (Model, error) {
	surface := NewMemSurface(80, 24)
	app, err := NewApp(surface, cfg)
	if err != nil {
		return Model{}, err
	}
	interval := cfg.PollTimeout
	if interval <= 0 {
		interval = DefaultPollTimeout
	}
	return Model{
		app:      app,
		surface:  surface,
		interval: interval,
		renderer: lipgloss.DefaultRenderer(),
	}, nil
}

// App returns the App the model steps.
func (m Model) App() *App {
	return m.app
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// WithRenderer sets the lipgloss renderer used to style the view.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// Init implements tea.Model. The first frame is drawn immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return frameMsg{} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.surface.Feed(keyInterrupt)
		case tea.KeyRunes:
			m.surface.Feed(msg.Runes...)
		case tea.KeySpace:
			m.surface.Feed(' ')
		case tea.KeyEsc:
			m.surface.Feed(keyEscape)
		}
		return m, nil

	case frameMsg:
		if err := m.app.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.app.Done() {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderBuffer(m.renderer, m.surface.Buffer())
}

// renderBuffer turns the cell grid into styled lines, one lipgloss render per
// run of equally styled cells.
func renderBuffer(r *lipgloss.Renderer, buf *Buffer) string {
	var out strings.Builder
	var run strings.Builder

	for y := 0; y < buf.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		runStyle := DefaultStyle()
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Get(x, y)
			if cell.Rune == 0 {
				continue
			}
			if cell.Style != runStyle && run.Len() > 0 {
				out.WriteString(styleRun(r, runStyle, run.String()))
				run.Reset()
			}
			runStyle = cell.Style
			run.WriteRune(cell.Rune)
		}
		tail := run.String()
		if runStyle == DefaultStyle() {
			tail = strings.TrimRight(tail, " ")
		}
		out.WriteString(styleRun(r, runStyle, tail))
		run.Reset()
	}
	return out.String()
}

func styleRun(r *lipgloss.Renderer, style Style, s string) string {
	if s == "" || style == DefaultStyle() {
		return s
	}
	ls := r.NewStyle().
		Bold(style.Attr.Has(AttrBold)).
		Faint(style.Attr.Has(AttrDim)).
		Underline(style.Attr.Has(AttrUnderline)).
		Reverse(style.Attr.Has(AttrInverse))
	if style.FG.Mode == Color16 {
		ls = ls.Foreground(lipgloss.Color(strconv.Itoa(int(style.FG.Index))))
	}
	if style.BG.Mode == Color16 {
		ls = ls.Background(lipgloss.Color(strconv.Itoa(int(style.BG.Index))))
	}
	return ls.Render(s)
}
