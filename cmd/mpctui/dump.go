package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mpctui"
)

func newDumpCmd(opts *options) *cobra.Command {
	var (
		keys       string
		frames     int
		termWidth  int
		termHeight int
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Render the panel without a terminal and print it",
		Long: `dump replays --keys one per frame against an in-memory surface, renders
--frames more frames and prints the final screen as plain text.`,
		Example: `  mpctui dump --keys 1
  mpctui dump --keys lj --term-width 60`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			logger, closer, err := opts.logger()
			if err != nil {
				return err
			}
			defer closer.Close()

			surface := mpctui.NewMemSurface(termWidth, termHeight)
			app, err := mpctui.NewApp(surface, cfg)
			if err != nil {
				return err
			}
			app.Logger(logger)

			surface.Feed([]rune(keys)...)
			steps := len([]rune(keys)) + 1 + max(frames, 0)
			for i := 0; i < steps && !app.Done(); i++ {
				if err := app.Step(); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), surface.Buffer().StringTrimmed())
			return err
		},
	}

	cmd.Flags().StringVar(&keys, "keys", "", "keys to replay, one per frame")
	cmd.Flags().IntVar(&frames, "frames", 1, "frames to render after the keys")
	cmd.Flags().IntVar(&termWidth, "term-width", 100, "simulated terminal width")
	cmd.Flags().IntVar(&termHeight, "term-height", 20, "simulated terminal height")
	return cmd
}
