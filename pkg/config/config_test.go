package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10000, cfg.Optimizer.Iterations)
	assert.InDelta(t, 0.01, cfg.Optimizer.LearningRate, 1e-12)
	assert.Equal(t, int64(0), cfg.Optimizer.Seed)
	assert.InDelta(t, 1e-6, cfg.Solver.Tolerance, 1e-15)
	assert.Equal(t, 100, cfg.Solver.MaxIterations)
	assert.Equal(t, 100, cfg.Lattice.Steps)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OPTIMIZER_ITERATIONS", "5000")
	t.Setenv("OPTIMIZER_SEED", "42")
	t.Setenv("BINOMIAL_STEPS", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.Optimizer.Iterations)
	assert.Equal(t, int64(42), cfg.Optimizer.Seed)
	assert.Equal(t, 500, cfg.Lattice.Steps)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ENV", "sandbox")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	// Unparseable values fall back to defaults rather than failing.
	t.Setenv("OPTIMIZER_ITERATIONS", "lots")
	t.Setenv("SOLVER_TOLERANCE", "tiny")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.Optimizer.Iterations)
	assert.InDelta(t, 1e-6, cfg.Solver.Tolerance, 1e-15)
}

func TestValidate_RejectsNonPositiveTunables(t *testing.T) {
	t.Setenv("OPTIMIZER_ITERATIONS", "-1")
	_, err := Load()
	assert.Error(t, err)
}
