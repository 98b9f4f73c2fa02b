package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Div9851/vacuum-sim/sim"
	"github.com/Div9851/vacuum-sim/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal view with start, pause, reset and speed controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// log lines would tear the full-screen view
			quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
			s, err := sim.New(cfg, cfg.Seed(), sim.WithLogger(quiet))
			if err != nil {
				return err
			}
			if err := tui.Run(s); err != nil {
				return err
			}
			if s.Status == sim.FINISHED {
				slog.Info("finished", "run", s.RunID, "moves", s.Agent.Moves(), "elapsed", s.Elapsed())
			}
			return nil
		},
	}
}
