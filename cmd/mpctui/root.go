package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mpctui"
)

// options holds the flag values shared by every subcommand.
type options struct {
	v *viper.Viper

	cfgFile string
	logFile string
	backend string
	width   int
	height  int
	title   string
	theme   string
	border  string
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}
	defaults := mpctui.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "mpctui",
		Short: "Sequencer play/record panel for the terminal",
		Long: `mpctui draws a single bordered panel with a title, input fields and
action buttons. Move focus between inputs with h/j/k/l, pick an action with
its number key and quit with q.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.initConfig(); err != nil {
				return err
			}
			return opts.bindFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.mpctui.toml)")
	flags.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	flags.IntVar(&opts.width, "width", defaults.Panel.Width, "panel width in cells")
	flags.IntVar(&opts.height, "height", defaults.Panel.Height, "panel height in cells")
	flags.StringVar(&opts.title, "title", defaults.Form.Title, "panel title")
	flags.StringVar(&opts.theme, "theme", defaults.Theme, "color theme: default, mono or classic")
	flags.StringVar(&opts.border, "border", defaults.Border, "border style: single or rounded")
	rootCmd.Flags().StringVarP(&opts.backend, "backend", "b", "term", "terminal backend: term or tea")

	rootCmd.AddCommand(newDumpCmd(opts))
	return rootCmd
}

func (o *options) initConfig() error {
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			o.v.AddConfigPath(home)
		}
		o.v.AddConfigPath(".")
		o.v.SetConfigType("toml")
		o.v.SetConfigName(".mpctui")
	}
	o.v.SetEnvPrefix("mpctui")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// bindFlags copies config values into flags the user did not set, so
// explicit flags win over the config file and environment.
func (o *options) bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || !o.v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", o.v.Get(f.Name))); err != nil {
			bindErr = fmt.Errorf("failed to set flag %s from config: %w", f.Name, err)
		}
	})
	return bindErr
}

// config builds the engine configuration from flags and the config file.
// Fields, actions and the poll interval can only come from the file.
func (o *options) config() (mpctui.Config, error) {
	cfg := mpctui.DefaultConfig()
	cfg.Panel = mpctui.PanelSize{Width: o.width, Height: o.height}
	cfg.Form.Title = o.title
	cfg.Theme = o.theme
	cfg.Border = o.border

	if o.v.IsSet("fields") {
		var fields []mpctui.Field
		if err := o.v.UnmarshalKey("fields", &fields); err != nil {
			return cfg, fmt.Errorf("failed to decode fields: %w", err)
		}
		cfg.Form.Fields = fields
	}
	if o.v.IsSet("actions") {
		cfg.Form.Actions = o.v.GetStringSlice("actions")
	}
	if o.v.IsSet("poll") {
		cfg.PollTimeout = o.v.GetDuration("poll")
	}
	return cfg, cfg.Validate()
}

// logger opens the log file. Logs never go to the terminal the panel is
// drawn on.
func (o *options) logger() (*slog.Logger, io.Closer, error) {
	if o.logFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With(slog.String("backend", o.backend)), f, nil
}

func (o *options) run(ctx context.Context) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}
	logger, closer, err := o.logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch o.backend {
	case "term":
		app, err := mpctui.NewApp(mpctui.NewTerminal(os.Stdin, os.Stdout), cfg)
		if err != nil {
			return err
		}
		err = app.Logger(logger).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	case "tea":
		model, err := mpctui.NewModel(cfg)
		if err != nil {
			return err
		}
		model.App().Logger(logger)
		final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to run program: %w", err)
		}
		if m, ok := final.(mpctui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	}
	return fmt.Errorf("unknown backend %q", o.backend)
}
