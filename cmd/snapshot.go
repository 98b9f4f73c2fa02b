package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Div9851/vacuum-sim/render"
	"github.com/Div9851/vacuum-sim/sim"
)

func snapshotCmd() *cobra.Command {
	var (
		out      string
		steps    int
		cellSize int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Step a fresh simulation and save the grid as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := sim.New(cfg, cfg.Seed(), sim.WithLogger(slog.Default()))
			if err != nil {
				return err
			}
			s.Start()
			for i := 0; i < steps && s.Status != sim.FINISHED; i++ {
				s.Next()
			}
			if err := render.SavePNG(s.Frame(), out, cellSize); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			slog.Info("snapshot saved", "path", out, "run", s.RunID, "moves", s.Agent.Moves(), "progress", s.Progress())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "grid.png", "output PNG path")
	cmd.Flags().IntVar(&steps, "steps", 0, "steps to run before drawing")
	cmd.Flags().IntVar(&cellSize, "cell-size", render.DefaultCellSize, "tile size in pixels")
	return cmd
}
