package mpctui

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPollTimeout bounds each wait for a key press.
const DefaultPollTimeout = 16 * time.Millisecond

// Config describes the panel an App draws and how it polls for input.
type Config struct {
	Panel       PanelSize     `mapstructure:"panel"`
	Form        Form          `mapstructure:"form"`
	PollTimeout time.Duration `mapstructure:"poll"`
	Theme       string        `mapstructure:"theme"`
	Border      string        `mapstructure:"border"`
}

// DefaultConfig returns the Play/Record panel.
func DefaultConfig() Config {
	return Config{
		Panel: PanelSize{Width: 40, Height: 16},
		Form: Form{
			Title: "Play/Record",
			Fields: []Field{
				{Label: "Seq", Value: "1-(unused)"},
				{Label: "BPM", Value: "120.0"},
			},
			Actions: []string{"TODO", "DONE"},
		},
		PollTimeout: DefaultPollTimeout,
		Theme:       "default",
		Border:      "single",
	}
}

// Validate checks the configuration for values the engine cannot lay out.
func (c Config) Validate() error {
	if c.Panel.Width < 2 || c.Panel.Height < 4 {
		return fmt.Errorf("%w: panel must be at least 2x4, got %dx%d",
			ErrInvalidConfig, c.Panel.Width, c.Panel.Height)
	}
	if c.PollTimeout < 0 {
		return fmt.Errorf("%w: negative poll timeout %s", ErrInvalidConfig, c.PollTimeout)
	}
	if len(c.Form.Actions) > 15 {
		return fmt.Errorf("%w: %d actions, at most 15 can be selected by key",
			ErrInvalidConfig, len(c.Form.Actions))
	}
	for i, f := range c.Form.Fields {
		if f.Label == "" {
			return fmt.Errorf("%w: field %d has no label", ErrInvalidConfig, i)
		}
	}
	if _, err := ThemeByName(c.Theme); err != nil {
		return err
	}
	if _, err := BorderByName(c.Border); err != nil {
		return err
	}
	return nil
}

// BorderByName looks up a border style by its configuration name.
func BorderByName(name string) (BorderStyle, error) {
	switch name {
	case "", "single":
		return BorderSingle, nil
	case "rounded":
		return BorderRounded, nil
	}
	return BorderStyle{}, fmt.Errorf("%w: unknown border %q", ErrInvalidConfig, name)
}
