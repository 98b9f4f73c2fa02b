package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRows           = 6
	DefaultCols           = 6
	DefaultObstacles      = 5
	DefaultStepIntervalMs = 500
	MinStepIntervalMs     = 100
	MaxStepIntervalMs     = 1000
	StepIntervalStepMs    = 100
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Rows           int    `json:"rows" yaml:"rows"`
	Cols           int    `json:"cols" yaml:"cols"`
	Obstacles      int    `json:"obstacles" yaml:"obstacles"`
	StepIntervalMs int    `json:"stepIntervalMs" yaml:"stepIntervalMs"`
	MaxSteps       int    `json:"maxSteps,omitempty" yaml:"maxSteps,omitempty"`
	RandSeed       uint64 `json:"randSeed,omitempty" yaml:"randSeed,omitempty"`
	LogLevel       string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

func Default() Config {
	return Config{
		Rows:           DefaultRows,
		Cols:           DefaultCols,
		Obstacles:      DefaultObstacles,
		StepIntervalMs: DefaultStepIntervalMs,
		LogLevel:       "info",
	}
}

func (cfg Config) StepInterval() time.Duration {
	return time.Duration(cfg.StepIntervalMs) * time.Millisecond
}

// Seed returns RandSeed, or a clock-based seed when it is zero.
func (cfg Config) Seed() uint64 {
	if cfg.RandSeed != 0 {
		return cfg.RandSeed
	}
	return uint64(time.Now().UnixNano())
}

func (cfg Config) Validate() error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, cfg.Rows, cfg.Cols)
	}
	if cfg.Obstacles < 0 {
		return fmt.Errorf("%w: obstacles must be non-negative, got %d", ErrInvalid, cfg.Obstacles)
	}
	if cfg.StepIntervalMs < 0 {
		return fmt.Errorf("%w: stepIntervalMs must be non-negative, got %d", ErrInvalid, cfg.StepIntervalMs)
	}
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("%w: maxSteps must be non-negative, got %d", ErrInvalid, cfg.MaxSteps)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load reads defaults, then the YAML file at path (if any), then the .env
// files and VACUUM_* environment variables.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			slog.Debug("loaded env file", "path", envFile)
			break
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"VACUUM_ROWS", &cfg.Rows},
		{"VACUUM_COLS", &cfg.Cols},
		{"VACUUM_OBSTACLES", &cfg.Obstacles},
		{"VACUUM_STEP_INTERVAL_MS", &cfg.StepIntervalMs},
		{"VACUUM_MAX_STEPS", &cfg.MaxSteps},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, v.key, raw)
		}
		*v.dst = n
	}
	if raw := os.Getenv("VACUUM_RAND_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: VACUUM_RAND_SEED=%q is not an unsigned integer", ErrInvalid, raw)
		}
		cfg.RandSeed = seed
	}
	if raw := os.Getenv("VACUUM_LOG_LEVEL"); raw != "" {
		cfg.LogLevel = raw
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
}

// ClampInterval keeps a step interval inside the range offered by the
// interactive front-end.
func ClampInterval(ms int) int {
	if ms < MinStepIntervalMs {
		return MinStepIntervalMs
	}
	if ms > MaxStepIntervalMs {
		return MaxStepIntervalMs
	}
	return ms
}
