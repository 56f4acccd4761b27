// Package factors estimates covariance/correlation and fits linear factor
// models: simple and multiple ordinary least squares, CAPM, and the
// Fama-French three- and five-factor attributions, all sharing one
// normal-equations solver.
package factors

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Covariance / Correlation
// =============================================================================

// Mean is the arithmetic mean, 0 for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance is the sample variance with the n-1 denominator.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

// StdDev is the sample standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Covariance is the sample covariance of two parallel series (n-1
// denominator). The series must have equal length of at least 2.
func Covariance(x, y []float64) (float64, error) {
	if err := quanterr.SameLen("x", len(x), "y", len(y)); err != nil {
		return 0, err
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 observations, got %d",
			quanterr.ErrInvalidInput, len(x))
	}

	meanX, meanY := Mean(x), Mean(y)
	var sum float64
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(len(x)-1), nil
}

// Correlation normalizes covariance by the product of standard deviations,
// returning 0 when either series is degenerate (zero variance).
func Correlation(x, y []float64) (float64, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, err
	}

	sx, sy := StdDev(x), StdDev(y)
	if sx == 0 || sy == 0 {
		return 0, nil
	}
	return cov / (sx * sy), nil
}

// CovarianceMatrix builds the symmetric n x n sample covariance matrix of
// the given return series (one slice per asset, all the same length).
func CovarianceMatrix(series [][]float64) ([][]float64, error) {
	n := len(series)
	if err := quanterr.NotEmpty("series", n); err != nil {
		return nil, err
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov, err := Covariance(series[i], series[j])
			if err != nil {
				return nil, err
			}
			matrix[i][j] = cov
			matrix[j][i] = cov
		}
	}
	return matrix, nil
}
