package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 6, cfg.Cols)
	assert.Equal(t, 5, cfg.Obstacles)
	assert.Equal(t, 500*time.Millisecond, cfg.StepInterval())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("no file gives defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := writeFile(t, "vacuum.yaml", "rows: 3\ncols: 4\nstepIntervalMs: 100\nrandSeed: 77\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Rows)
		assert.Equal(t, 4, cfg.Cols)
		assert.Equal(t, 100, cfg.StepIntervalMs)
		assert.Equal(t, uint64(77), cfg.RandSeed)
		assert.Equal(t, DefaultObstacles, cfg.Obstacles)
	})

	t.Run("environment overrides yaml", func(t *testing.T) {
		path := writeFile(t, "vacuum.yaml", "rows: 3\n")
		t.Setenv("VACUUM_ROWS", "9")
		t.Setenv("VACUUM_RAND_SEED", "12")
		t.Setenv("VACUUM_LOG_LEVEL", "debug")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Rows)
		assert.Equal(t, uint64(12), cfg.RandSeed)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("env file is loaded", func(t *testing.T) {
		require.NoError(t, os.Unsetenv("VACUUM_COLS"))
		t.Cleanup(func() { os.Unsetenv("VACUUM_COLS") })
		envFile := writeFile(t, ".env", "VACUUM_COLS=11\n")
		cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"), envFile)
		require.NoError(t, err)
		assert.Equal(t, 11, cfg.Cols)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("VACUUM_OBSTACLES", "many")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "rows: [1, 2\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := writeFile(t, "zero.yaml", "rows: 0\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -2 }},
		{"negative obstacles", func(c *Config) { c.Obstacles = -1 }},
		{"negative interval", func(c *Config) { c.StepIntervalMs = -1 }},
		{"negative max steps", func(c *Config) { c.MaxSteps = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestSeed(t *testing.T) {
	cfg := Default()
	cfg.RandSeed = 5
	assert.Equal(t, uint64(5), cfg.Seed())
	cfg.RandSeed = 0
	assert.NotZero(t, cfg.Seed())
}

func TestClampInterval(t *testing.T) {
	assert.Equal(t, 100, ClampInterval(0))
	assert.Equal(t, 300, ClampInterval(300))
	assert.Equal(t, 1000, ClampInterval(5000))
}
