package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Div9851/vacuum-sim/config"
)

var envFiles = []string{".env", "../.env"}

type globalFlags struct {
	configPath string
	profile    string
	verbose    bool
	rows       int
	cols       int
	obstacles  int
	intervalMs int
	maxSteps   int
	seed       uint64
}

var flags globalFlags

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var stopper interface{ Stop() }
	cmd := &cobra.Command{
		Use:           "vacuumsim",
		Short:         "Grid-world vacuum cleaner simulation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			stopper, err = startProfile(flags.profile)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopper != nil {
				stopper.Stop()
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", os.Getenv("VACUUM_CONFIG"), "path to a YAML config file")
	pf.StringVar(&flags.profile, "profile", "", "write a profile to the working directory: cpu, mem, block or trace")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&flags.rows, "rows", config.DefaultRows, "grid rows")
	pf.IntVar(&flags.cols, "cols", config.DefaultCols, "grid columns")
	pf.IntVar(&flags.obstacles, "obstacles", config.DefaultObstacles, "number of drawn obstacles")
	pf.IntVar(&flags.intervalMs, "interval", config.DefaultStepIntervalMs, "milliseconds between steps")
	pf.IntVar(&flags.maxSteps, "max-steps", 0, "stop after this many steps (0 = until clean)")
	pf.Uint64Var(&flags.seed, "seed", 0, "random seed (0 = from the clock)")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(tuiCmd())
	cmd.AddCommand(snapshotCmd())
	cmd.AddCommand(benchCmd())
	cmd.AddCommand(configCmd())
	return cmd
}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet), nil
	case "block":
		return profile.Start(profile.BlockProfile, profile.ProfilePath("."), profile.Quiet), nil
	case "trace":
		return profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.Quiet), nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", mode)
}

// loadConfig layers file, env and explicitly set flags, then installs the
// default logger.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flags.configPath, envFiles...)
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("rows") {
		cfg.Rows = flags.rows
	}
	if set("cols") {
		cfg.Cols = flags.cols
	}
	if set("obstacles") {
		cfg.Obstacles = flags.obstacles
	}
	if set("interval") {
		cfg.StepIntervalMs = flags.intervalMs
	}
	if set("max-steps") {
		cfg.MaxSteps = flags.maxSteps
	}
	if set("seed") {
		cfg.RandSeed = flags.seed
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}
