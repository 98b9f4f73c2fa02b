package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/Div9851/vacuum-sim/agent"
	"github.com/Div9851/vacuum-sim/agentaction"
	"github.com/Div9851/vacuum-sim/config"
	"github.com/Div9851/vacuum-sim/environment"
	"github.com/Div9851/vacuum-sim/mapdata"
	"github.com/Div9851/vacuum-sim/render"
	"github.com/Div9851/vacuum-sim/rng"
)

type Status int

const (
	IDLE Status = iota
	RUNNING
	PAUSED
	FINISHED
)

func (status Status) ToStr() string {
	switch status {
	case IDLE:
		return "Idle"
	case RUNNING:
		return "Running"
	case PAUSED:
		return "Paused"
	case FINISHED:
		return "Finished"
	}
	return "Unknown"
}

type Result struct {
	RunID    string
	Moves    int
	Cleaned  int
	Elapsed  time.Duration
	Finished bool
}

// Simulator drives one environment and one agent. It owns pacing, obstacle
// placement and run bookkeeping; the agent and environment know nothing of
// time.
type Simulator struct {
	RunID      string
	Env        *environment.Environment
	Agent      *agent.Agent
	Obstacles  map[mapdata.Pos]struct{}
	LastAction agentaction.Action
	Status     Status
	Cleaned    int
	StartTime  time.Time
	EndTime    time.Time
	Config     config.Config
	SimRandGen *rand.Rand
	Logger     *slog.Logger
	DumpTo     io.Writer
}

type Option func(*Simulator)

func WithLogger(logger *slog.Logger) Option {
	return func(sim *Simulator) {
		sim.Logger = logger
	}
}

// WithDump makes Run write a text frame to w after every step.
func WithDump(w io.Writer) Option {
	return func(sim *Simulator) {
		sim.DumpTo = w
	}
}

func New(cfg config.Config, seed uint64, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sim := &Simulator{
		Config:     cfg,
		SimRandGen: rng.New(seed),
		Logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(sim)
	}
	if err := sim.Reset(); err != nil {
		return nil, err
	}
	return sim, nil
}

// Reset throws away the environment and the agent and builds fresh random
// ones, with new obstacles and a new run ID.
func (sim *Simulator) Reset() error {
	env, err := environment.New(sim.Config.Rows, sim.Config.Cols, sim.SimRandGen)
	if err != nil {
		return err
	}
	agentRandGen := rng.New(sim.SimRandGen.Uint64())
	sim.RunID = "run-" + uuid.New().String()
	sim.Env = env
	sim.Agent = agent.New(env, agentRandGen)
	sim.LastAction = agentaction.UNKNOWN
	sim.Status = IDLE
	sim.Cleaned = 0
	sim.StartTime = time.Time{}
	sim.EndTime = time.Time{}
	sim.placeObstacles(sim.Config.Obstacles)
	sim.Logger.Debug("simulation reset",
		"run", sim.RunID,
		"rows", sim.Config.Rows,
		"cols", sim.Config.Cols,
		"dirty", env.DirtyCount(),
		"agent", sim.Agent.Pos())
	return nil
}

// placeObstacles picks count distinct cells other than the agent's start.
// Obstacles are only drawn; the agent never senses them.
func (sim *Simulator) placeObstacles(count int) {
	h, w := sim.Env.Size()
	if limit := h*w - 1; count > limit {
		count = limit
	}
	sim.Obstacles = make(map[mapdata.Pos]struct{}, count)
	start := sim.Agent.Pos()
	for len(sim.Obstacles) < count {
		pos := mapdata.Pos{R: sim.SimRandGen.Intn(h), C: sim.SimRandGen.Intn(w)}
		if pos != start {
			sim.Obstacles[pos] = struct{}{}
		}
	}
}

// Start marks the run as running. The clock starts on the first Start and
// keeps going across pauses.
func (sim *Simulator) Start() {
	if sim.Status == FINISHED {
		return
	}
	if sim.StartTime.IsZero() {
		sim.StartTime = time.Now()
	}
	sim.Status = RUNNING
}

func (sim *Simulator) Pause() {
	if sim.Status == RUNNING {
		sim.Status = PAUSED
	}
}

// Next performs one agent step.
func (sim *Simulator) Next() agentaction.Action {
	action := sim.Agent.Step()
	sim.LastAction = action
	if action == agentaction.CLEAN {
		sim.Cleaned++
	}
	if sim.Status != FINISHED && sim.Env.IsFullyClean() {
		sim.finish()
	}
	return action
}

func (sim *Simulator) finish() {
	sim.Status = FINISHED
	sim.EndTime = time.Now()
	if sim.StartTime.IsZero() {
		sim.StartTime = sim.EndTime
	}
	sim.Logger.Info("finished",
		"run", sim.RunID,
		"moves", sim.Agent.Moves(),
		"elapsed", sim.Elapsed().Round(10*time.Millisecond))
}

// Run steps the agent every StepInterval until the grid is clean, MaxSteps is
// reached or ctx is done. A zero interval steps as fast as possible.
func (sim *Simulator) Run(ctx context.Context) (Result, error) {
	sim.Start()
	if sim.Env.IsFullyClean() && sim.Status != FINISHED {
		sim.finish()
	}

	var tick <-chan time.Time
	if interval := sim.Config.StepInterval(); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for sim.Status != FINISHED {
		if sim.Config.MaxSteps > 0 && sim.Agent.Moves() >= sim.Config.MaxSteps {
			sim.Pause()
			sim.Logger.Warn("step limit reached",
				"run", sim.RunID,
				"moves", sim.Agent.Moves(),
				"dirty", sim.Env.DirtyCount())
			break
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				sim.Pause()
				return sim.Result(), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			sim.Pause()
			return sim.Result(), err
		}
		action := sim.Next()
		sim.Logger.Debug("step",
			"run", sim.RunID,
			"moves", sim.Agent.Moves(),
			"action", action.ToStr(),
			"pos", sim.Agent.Pos())
		if sim.DumpTo != nil {
			sim.Dump(sim.DumpTo)
		}
	}
	return sim.Result(), nil
}

func (sim *Simulator) Result() Result {
	return Result{
		RunID:    sim.RunID,
		Moves:    sim.Agent.Moves(),
		Cleaned:  sim.Cleaned,
		Elapsed:  sim.Elapsed(),
		Finished: sim.Status == FINISHED,
	}
}

// Elapsed is the wall-clock time since the first Start, frozen once the grid
// is clean.
func (sim *Simulator) Elapsed() time.Duration {
	if sim.StartTime.IsZero() {
		return 0
	}
	if !sim.EndTime.IsZero() {
		return sim.EndTime.Sub(sim.StartTime)
	}
	return time.Since(sim.StartTime)
}

// Progress is the percentage of clean cells over the cells not covered by an
// obstacle, capped at 100.
func (sim *Simulator) Progress() int {
	h, w := sim.Env.Size()
	total := h*w - len(sim.Obstacles)
	if total <= 0 {
		return 100
	}
	progress := sim.Env.CleanCount() * 100 / total
	if progress > 100 {
		progress = 100
	}
	return progress
}

func (sim *Simulator) StatusText() string {
	if sim.Status == FINISHED {
		return fmt.Sprintf("Finished in %.2fs", sim.Elapsed().Seconds())
	}
	return sim.Status.ToStr()
}

func (sim *Simulator) Frame() render.Frame {
	obstacles := make(map[mapdata.Pos]struct{}, len(sim.Obstacles))
	for pos := range sim.Obstacles {
		obstacles[pos] = struct{}{}
	}
	return render.Frame{
		Cells:     sim.Env.Cells(),
		Agent:     sim.Agent.Pos(),
		Obstacles: obstacles,
		Moves:     sim.Agent.Moves(),
		Progress:  sim.Progress(),
		Status:    sim.StatusText(),
	}
}

func (sim *Simulator) Dump(w io.Writer) {
	fmt.Fprintf(w, "MOVE %d:\n", sim.Agent.Moves())
	fmt.Fprint(w, render.Plain(sim.Frame()))
	fmt.Fprintf(w, "last action: %s\n", sim.LastAction.ToStr())
	fmt.Fprintf(w, "pos: %v\n", sim.Agent.Pos())
	fmt.Fprintf(w, "dirty: %d progress: %d%%\n", sim.Env.DirtyCount(), sim.Progress())
}
