package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Div9851/vacuum-sim/sim"
)

func runCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation headless until the grid is clean",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			opts := []sim.Option{sim.WithLogger(slog.Default())}
			if dump {
				opts = append(opts, sim.WithDump(cmd.OutOrStdout()))
			}
			s, err := sim.New(cfg, cfg.Seed(), opts...)
			if err != nil {
				return err
			}
			slog.Info("starting", "run", s.RunID, "rows", cfg.Rows, "cols", cfg.Cols, "dirty", s.Env.DirtyCount())
			if dump {
				s.Dump(cmd.OutOrStdout())
			}
			res, err := s.Run(ctx)
			if err != nil {
				return err
			}
			if res.Finished {
				fmt.Fprintf(cmd.OutOrStdout(), "Finished in %d moves (%.2fs)\n", res.Moves, res.Elapsed.Seconds())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %d moves, %d dirty cells left\n", res.Moves, s.Env.DirtyCount())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", true, "print the grid after every step")
	return cmd
}
