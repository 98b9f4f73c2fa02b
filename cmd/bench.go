package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Div9851/vacuum-sim/experiment"
)

func benchCmd() *cobra.Command {
	var (
		episodes int
		workers  int
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run many headless episodes and report move statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			summary, err := experiment.Run(ctx, cfg, episodes, workers, slog.Default())
			if err != nil {
				return err
			}
			if asJSON {
				data, _ := json.MarshalIndent(summary, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary.String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "n", 100, "number of episodes")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "episodes run in parallel")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
