// Package config reads engine configuration from environment variables,
// with an optional .env file discovered relative to the working directory or
// the executable. It is the only place that calls os.Getenv.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the engine CLI.
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string
	LogFormat string // json, console

	// Engine tunables
	Optimizer OptimizerConfig
	Solver    SolverConfig
	Lattice   LatticeConfig
}

// OptimizerConfig holds the portfolio optimizer defaults.
type OptimizerConfig struct {
	Iterations   int
	LearningRate float64
	Seed         int64 // 0 = non-deterministic
	RiskFreeRate float64
}

// SolverConfig holds the iterative-solver defaults shared by the implied
// volatility and yield-to-maturity searches.
type SolverConfig struct {
	Tolerance     float64
	MaxIterations int
}

// LatticeConfig holds the binomial tree defaults.
type LatticeConfig struct {
	Steps int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		Optimizer: OptimizerConfig{
			Iterations:   getEnvAsInt("OPTIMIZER_ITERATIONS", 10000),
			LearningRate: getEnvAsFloat("OPTIMIZER_LEARNING_RATE", 0.01),
			Seed:         getEnvAsInt64("OPTIMIZER_SEED", 0),
			RiskFreeRate: getEnvAsFloat("RISK_FREE_RATE", 0.02),
		},

		Solver: SolverConfig{
			Tolerance:     getEnvAsFloat("SOLVER_TOLERANCE", 1e-6),
			MaxIterations: getEnvAsInt("SOLVER_MAX_ITERATIONS", 100),
		},

		Lattice: LatticeConfig{
			Steps: getEnvAsInt("BINOMIAL_STEPS", 100),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks that the configured values are usable.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}
	if c.Optimizer.Iterations <= 0 {
		return fmt.Errorf("OPTIMIZER_ITERATIONS must be positive")
	}
	if c.Optimizer.LearningRate <= 0 {
		return fmt.Errorf("OPTIMIZER_LEARNING_RATE must be positive")
	}
	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("SOLVER_TOLERANCE must be positive")
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("SOLVER_MAX_ITERATIONS must be positive")
	}
	if c.Lattice.Steps <= 0 {
		return fmt.Errorf("BINOMIAL_STEPS must be positive")
	}
	return nil
}

// loadEnvFile tries to load .env from multiple locations.
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
