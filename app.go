package mpctui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// keyInterrupt is Ctrl-C, which arrives as a plain byte once the terminal
// is in raw mode.
const keyInterrupt = 0x03

const keyEscape = 0x1b

// App drives the panel one frame at a time. Each frame it rebuilds the
// element list from the view, applies at most one buffered key, then polls
// the surface for the next one.
//
// usage:
//
//	app, err := NewApp(NewTerminal(os.Stdin, os.Stdout), DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	return app.Run(ctx)
type App struct {
	surface Surface
	config  Config
	theme   Theme
	border  BorderStyle
	view    func(*Frame)
	logger  *slog.Logger

	panel        Panel
	elements     []Element
	focus        Focus
	key          rune
	hasKey       bool
	active       int
	notification string
	started      bool
	quit         bool
}

// NewApp creates an App drawing cfg's form on s.
func NewApp(s Surface, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	border, err := BorderByName(cfg.Border)
	if err != nil {
		return nil, err
	}

	return &App{
		surface: s,
		config:  cfg,
		theme:   theme,
		border:  border,
		view:    cfg.Form.Declare,
		logger:  slog.New(slog.DiscardHandler),
	}, nil
}

// SetView replaces the configured form with a custom view. The view is
// called once per frame and declares widgets through the Frame.
func (a *App) SetView(view func(*Frame)) *App {
	a.view = view
	return a
}

// Logger sets the logger used for focus, action and lifecycle events.
func (a *App) Logger(l *slog.Logger) *App {
	a.logger = l
	return a
}

// Notify sets the message shown under the panel. Any key without a binding
// clears it.
func (a *App) Notify(msg string) {
	a.notification = msg
}

// Notification returns the current notification.
func (a *App) Notification() string {
	return a.notification
}

// Focus returns the focus cursor.
func (a *App) Focus() Pos {
	return a.focus.Cursor()
}

// ActiveAction returns the 1-based selected action, 0 for none.
func (a *App) ActiveAction() int {
	return a.active
}

// Panel returns where the panel was placed in the last frame.
func (a *App) Panel() Panel {
	return a.panel
}

// Elements returns the widgets declared in the last frame.
func (a *App) Elements() []Element {
	return a.elements
}

// Done reports whether quit was requested.
func (a *App) Done() bool {
	return a.quit
}

// Stop requests the loop to end after the current frame.
func (a *App) Stop() {
	a.quit = true
}

// Frame renders one frame and applies the buffered key, if any.
func (a *App) Frame() error {
	a.surface.Clear()

	termWidth, _ := a.surface.Size()
	a.panel = Place(a.config.Panel, termWidth)
	a.panel.Draw(a.surface, a.border, a.theme.Border)

	f := newFrame(a.surface, a.panel, a.theme, a.focus.Cursor(), a.active)
	a.view(f)
	a.elements = f.Elements()

	if !a.started {
		a.focus.First(a.elements)
		a.started = true
	}

	if a.hasKey {
		a.hasKey = false
		a.handleKey(a.key, f.ActionLabels())
	}

	a.surface.Move(a.panel.Y+a.panel.Height+1, a.panel.X)
	if a.notification != "" {
		a.surface.Print(a.notification, a.theme.Regular)
	}

	if err := a.surface.Flush(); err != nil {
		return fmt.Errorf("failed to flush frame: %w", err)
	}
	return nil
}

func (a *App) handleKey(key rune, actions []string) {
	switch key {
	case 'k':
		a.navigate(Up)
		return
	case 'j':
		a.navigate(Down)
		return
	case 'l':
		a.navigate(Right)
		return
	case 'h':
		a.navigate(Left)
		return
	}

	if n, err := strconv.ParseUint(string(key), 16, 8); err == nil {
		if int(n) <= len(actions) {
			a.active = int(n)
			if n > 0 {
				a.notification = actions[n-1]
			}
			a.logger.Debug("action selected", "action", a.active)
		}
		return
	}

	a.notification = ""
	if key == 'q' || key == keyInterrupt {
		a.quit = true
		a.logger.Debug("quit requested")
	}
}

func (a *App) navigate(d Direction) {
	from := a.focus.Cursor()
	if a.focus.Move(d, a.elements) {
		a.logger.Debug("focus moved", "direction", d, "from", from, "to", a.focus.Cursor())
	}
}

// Poll waits up to timeout for a key and buffers it for the next frame.
func (a *App) Poll(timeout time.Duration) error {
	key, ok, err := a.surface.PollKey(timeout)
	if err != nil {
		return fmt.Errorf("failed to poll key: %w", err)
	}
	if ok {
		a.key, a.hasKey = key, true
	}
	return nil
}

// Step renders one frame and then polls for the next key.
func (a *App) Step() error {
	if err := a.Frame(); err != nil {
		return err
	}
	return a.Poll(a.config.PollTimeout)
}

// Run opens the surface and steps frames until quit is requested or ctx is
// cancelled. Cancellation is checked between frames only.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.surface.Open(); err != nil {
		return fmt.Errorf("failed to open surface: %w", err)
	}
	defer func() {
		if cerr := a.surface.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close surface: %w", cerr)
		}
	}()

	a.logger.Info("started", "panel_width", a.config.Panel.Width, "panel_height", a.config.Panel.Height)
	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Step(); err != nil {
			return err
		}
	}
	a.logger.Info("stopped")
	return nil
}
