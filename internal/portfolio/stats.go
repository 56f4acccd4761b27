// Package portfolio constructs mean-variance portfolios: core return and
// variance statistics, a weight-constraint model, and a family of stochastic
// optimizers (max-Sharpe, min-variance, target-return, target-risk) plus the
// efficient frontier built on top of them.
package portfolio

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Core statistics
// =============================================================================

// ExpectedReturn is the weighted sum of per-asset expected returns.
func ExpectedReturn(returns, weights []float64) (float64, error) {
	if err := quanterr.NotEmpty("returns", len(returns)); err != nil {
		return 0, err
	}
	if err := quanterr.SameLen("returns", len(returns), "weights", len(weights)); err != nil {
		return 0, err
	}

	var sum float64
	for i, r := range returns {
		sum += r * weights[i]
	}
	return sum, nil
}

// Variance computes the portfolio variance w' C w with an explicit double
// loop. Dimension mismatches are errors, never silent truncation.
func Variance(covariance [][]float64, weights []float64) (float64, error) {
	n := len(weights)
	if err := quanterr.NotEmpty("weights", n); err != nil {
		return 0, err
	}
	if err := quanterr.SameLen("covariance rows", len(covariance), "weights", n); err != nil {
		return 0, err
	}
	for i, row := range covariance {
		if len(row) != n {
			return 0, fmt.Errorf("%w: covariance row %d has length %d, want %d",
				quanterr.ErrInvalidInput, i, len(row), n)
		}
	}

	var variance float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			variance += weights[i] * weights[j] * covariance[i][j]
		}
	}
	return variance, nil
}

// SharpeRatio is excess return per unit of volatility, defined as 0 at zero
// volatility to avoid NaN propagation.
func SharpeRatio(portfolioReturn, riskFreeRate, volatility float64) float64 {
	if volatility == 0 {
		return 0
	}
	return (portfolioReturn - riskFreeRate) / volatility
}

// evaluate snapshots the full metric set for a weight vector.
func evaluate(returns []float64, covariance [][]float64, weights []float64, riskFreeRate float64) (Result, error) {
	expReturn, err := ExpectedReturn(returns, weights)
	if err != nil {
		return Result{}, err
	}
	variance, err := Variance(covariance, weights)
	if err != nil {
		return Result{}, err
	}

	volatility := math.Sqrt(variance)
	return Result{
		Weights:        weights,
		ExpectedReturn: expReturn,
		Variance:       variance,
		Volatility:     volatility,
		SharpeRatio:    SharpeRatio(expReturn, riskFreeRate, volatility),
	}, nil
}
