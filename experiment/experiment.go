// Package experiment runs many headless episodes and summarizes how long the
// random walk takes to clean the grid.
package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Div9851/vacuum-sim/config"
	"github.com/Div9851/vacuum-sim/rng"
	"github.com/Div9851/vacuum-sim/sim"
)

type Summary struct {
	Episodes    int           `json:"episodes"`
	Finished    int           `json:"finished"`
	MeanMoves   float64       `json:"meanMoves"`
	StdMoves    float64       `json:"stdMoves"`
	MedianMoves float64       `json:"medianMoves"`
	MinMoves    float64       `json:"minMoves"`
	MaxMoves    float64       `json:"maxMoves"`
	Elapsed     time.Duration `json:"elapsed"`
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes=%d finished=%d moves: mean=%.1f std=%.1f median=%.0f min=%.0f max=%.0f",
		s.Episodes, s.Finished, s.MeanMoves, s.StdMoves, s.MedianMoves, s.MinMoves, s.MaxMoves)
}

// Run plays episodes independent runs with at most workers running at once.
// Every episode gets its own seed derived from cfg.Seed(), so a fixed seed
// reproduces the whole batch. Pacing is disabled.
func Run(ctx context.Context, cfg config.Config, episodes, workers int, logger *slog.Logger) (Summary, error) {
	if episodes <= 0 {
		return Summary{}, fmt.Errorf("%w: episodes must be positive, got %d", config.ErrInvalid, episodes)
	}
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg.StepIntervalMs = 0
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	start := time.Now()
	seeds := rng.Derive(cfg.Seed(), episodes)
	results := make([]sim.Result, episodes)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range seeds {
		i := i
		g.Go(func() error {
			s, err := sim.New(cfg, seeds[i], sim.WithLogger(logger))
			if err != nil {
				return err
			}
			res, err := s.Run(ctx)
			if err != nil {
				return fmt.Errorf("episode %d: %w", i, err)
			}
			results[i] = res
			logger.Debug("episode done", "episode", i, "run", res.RunID, "moves", res.Moves, "finished", res.Finished)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	summary := Summarize(results)
	summary.Elapsed = time.Since(start)
	return summary, nil
}

// Summarize computes move statistics over the finished results.
func Summarize(results []sim.Result) Summary {
	summary := Summary{Episodes: len(results)}
	var moves []float64
	for _, res := range results {
		if res.Finished {
			moves = append(moves, float64(res.Moves))
		}
	}
	summary.Finished = len(moves)
	if len(moves) == 0 {
		return summary
	}
	sort.Float64s(moves)
	summary.MeanMoves = stat.Mean(moves, nil)
	if len(moves) > 1 {
		summary.StdMoves = stat.StdDev(moves, nil)
	}
	summary.MedianMoves = stat.Quantile(0.5, stat.Empirical, moves, nil)
	summary.MinMoves = floats.Min(moves)
	summary.MaxMoves = floats.Max(moves)
	return summary
}
