package portfolio

// =============================================================================
// Optimizer Types
// =============================================================================

// Result is a snapshot of one candidate portfolio. It is recomputed on every
// optimizer call; nothing here is a living object.
type Result struct {
	Weights        []float64 `json:"weights"`
	ExpectedReturn float64   `json:"expected_return"`
	Variance       float64   `json:"variance"`
	Volatility     float64   `json:"volatility"`
	SharpeRatio    float64   `json:"sharpe_ratio"`
}

// OptimizerConfig tunes the random local search shared by every optimizer
// variant. All runs record their config implicitly through these knobs; an
// identical non-zero Seed reproduces a run exactly.
type OptimizerConfig struct {
	Iterations   int     `json:"iterations"`     // search steps (default: 10000)
	LearningRate float64 `json:"learning_rate"`  // perturbation span; each weight moves by U(-lr/2, +lr/2)
	RiskFreeRate float64 `json:"risk_free_rate"` // used by the Sharpe objective
	Seed         int64   `json:"seed"`           // RNG seed (0 = seed from wall clock)
}

// DefaultOptimizerConfig returns the standard search settings.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Iterations:   10000,
		LearningRate: 0.01,
		RiskFreeRate: 0,
		Seed:         0, // non-deterministic
	}
}

// DefaultFrontierPoints is the number of target returns the efficient
// frontier is evaluated at.
const DefaultFrontierPoints = 20
