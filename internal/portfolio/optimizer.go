package portfolio

import (
	"math"
	"math/rand"
	"time"
)

// =============================================================================
// Random local search
// =============================================================================
//
// There is no closed-form quadratic-programming solve here. Every optimizer
// variant runs the same stochastic hill climb: start from equal weights,
// perturb, renormalize, reject constraint violations, keep the candidate only
// when it beats the incumbent under the variant's acceptance rule. The result
// is a best-effort heuristic, not a guaranteed optimum; with Seed=0 two runs
// on identical inputs may differ.

// acceptFunc decides whether a valid candidate replaces the incumbent.
type acceptFunc func(candidate, best Result) bool

// optimize is the shared search loop behind all optimizer variants.
func optimize(returns []float64, covariance [][]float64, constraints Constraints,
	cfg OptimizerConfig, accept acceptFunc) (Result, error) {

	n := len(returns)
	if err := constraints.validate(n); err != nil {
		return Result{}, err
	}

	// Equal weights are the starting incumbent even when they violate the
	// constraint set; the first valid improving candidate displaces them.
	start := make([]float64, n)
	for i := range start {
		start[i] = 1 / float64(n)
	}
	best, err := evaluate(returns, covariance, start, cfg.RiskFreeRate)
	if err != nil {
		return Result{}, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	span := cfg.LearningRate / 2

	for iter := 0; iter < cfg.Iterations; iter++ {
		candidate := make([]float64, n)
		var sum float64
		for i, w := range best.Weights {
			// independent uniform nudge in [-lr/2, +lr/2]
			candidate[i] = w + (rng.Float64()*2-1)*span
			sum += candidate[i]
		}

		if sum == 0 {
			continue
		}
		for i := range candidate {
			candidate[i] /= sum
		}

		if !constraints.Satisfied(candidate) {
			continue
		}

		snapshot, err := evaluate(returns, covariance, candidate, cfg.RiskFreeRate)
		if err != nil {
			return Result{}, err
		}
		if accept(snapshot, best) {
			best = snapshot
		}
	}

	return best, nil
}

// =============================================================================
// Optimizer variants
// =============================================================================

// MaximizeSharpe searches for the constraint-valid portfolio with the highest
// Sharpe ratio.
func MaximizeSharpe(returns []float64, covariance [][]float64, constraints Constraints,
	cfg OptimizerConfig) (Result, error) {

	return optimize(returns, covariance, constraints, cfg,
		func(candidate, best Result) bool {
			return candidate.SharpeRatio > best.SharpeRatio
		})
}

// MinimizeVariance searches for the constraint-valid portfolio with the
// lowest variance.
func MinimizeVariance(returns []float64, covariance [][]float64, constraints Constraints,
	cfg OptimizerConfig) (Result, error) {

	return optimize(returns, covariance, constraints, cfg,
		func(candidate, best Result) bool {
			return candidate.Variance < best.Variance
		})
}

// TargetReturn searches for the lowest-variance portfolio near the target
// expected return.
//
// The acceptance rule is greedy and dual-criterion: a candidate must be
// simultaneously closer to the target AND lower-variance than the incumbent.
// Moves that improve one axis while regressing the other are rejected even
// when Pareto-improving overall; this bias is kept deliberately for parity
// with the original engine rather than replaced with a multi-objective
// method.
func TargetReturn(returns []float64, covariance [][]float64, constraints Constraints,
	cfg OptimizerConfig, target float64) (Result, error) {

	return optimize(returns, covariance, constraints, cfg,
		func(candidate, best Result) bool {
			return math.Abs(candidate.ExpectedReturn-target) < math.Abs(best.ExpectedReturn-target) &&
				candidate.Variance < best.Variance
		})
}

// TargetRisk is the symmetric variant of TargetReturn: it maximizes expected
// return subject to proximity to the target volatility, under the same
// greedy dual-criterion acceptance rule.
func TargetRisk(returns []float64, covariance [][]float64, constraints Constraints,
	cfg OptimizerConfig, targetVolatility float64) (Result, error) {

	return optimize(returns, covariance, constraints, cfg,
		func(candidate, best Result) bool {
			return math.Abs(candidate.Volatility-targetVolatility) < math.Abs(best.Volatility-targetVolatility) &&
				candidate.ExpectedReturn > best.ExpectedReturn
		})
}
