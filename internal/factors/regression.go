package factors

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Ordinary Least Squares
// =============================================================================

// SimpleRegression fits y = intercept + slope*x by the closed-form
// sum-of-products least squares. R-squared is clamped to [0,1]; the standard
// error uses the n-2 residual degrees of freedom.
func SimpleRegression(x, y []float64) (RegressionResult, error) {
	if err := quanterr.SameLen("x", len(x), "y", len(y)); err != nil {
		return RegressionResult{}, err
	}
	n := len(x)
	if n < 3 {
		return RegressionResult{}, fmt.Errorf("%w: need at least 3 observations, got %d",
			quanterr.ErrInvalidInput, n)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	denom := float64(n)*sumXX - sumX*sumX
	if math.Abs(denom) < singularPivotEps {
		return RegressionResult{}, fmt.Errorf("%w: regressor has no variation",
			quanterr.ErrUndefined)
	}

	slope := (float64(n)*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / float64(n)

	meanY := sumY / float64(n)
	var ssRes, ssTot float64
	for i := range y {
		fitted := intercept + slope*x[i]
		ssRes += (y[i] - fitted) * (y[i] - fitted)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}

	return RegressionResult{
		Intercept:     intercept,
		Coefficients:  []float64{slope},
		RSquared:      rSquared(ssRes, ssTot),
		StandardError: math.Sqrt(ssRes / float64(n-2)),
	}, nil
}

// MultipleRegression fits y on the given factor series (one slice per
// factor, all length len(y)) with an intercept. The normal equations
// X'X b = X'y are assembled explicitly and solved by the shared pivoted
// Gaussian elimination; a collinear factor set surfaces as ErrUndefined.
func MultipleRegression(factorSeries [][]float64, y []float64) (RegressionResult, error) {
	k := len(factorSeries)
	n := len(y)
	if err := quanterr.NotEmpty("factors", k); err != nil {
		return RegressionResult{}, err
	}
	for i, f := range factorSeries {
		if err := quanterr.SameLen(fmt.Sprintf("factor %d", i), len(f), "y", n); err != nil {
			return RegressionResult{}, err
		}
	}
	if n < k+2 {
		return RegressionResult{}, fmt.Errorf("%w: %d observations cannot support %d factors",
			quanterr.ErrInvalidInput, n, k)
	}

	// Design matrix rows: [1, f1, f2, ..., fk].
	dim := k + 1
	row := func(i int) []float64 {
		r := make([]float64, dim)
		r[0] = 1
		for j, f := range factorSeries {
			r[j+1] = f[i]
		}
		return r
	}

	// Normal equations: xtx = X'X, xty = X'y.
	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	for i := 0; i < n; i++ {
		r := row(i)
		for a := 0; a < dim; a++ {
			for b := 0; b < dim; b++ {
				xtx[a][b] += r[a] * r[b]
			}
			xty[a] += r[a] * y[i]
		}
	}

	beta, err := solveLinearSystem(xtx, xty)
	if err != nil {
		return RegressionResult{}, err
	}

	meanY := Mean(y)
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		r := row(i)
		var fitted float64
		for j := 0; j < dim; j++ {
			fitted += beta[j] * r[j]
		}
		ssRes += (y[i] - fitted) * (y[i] - fitted)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}

	r2 := rSquared(ssRes, ssTot)
	adjusted := 1 - (1-r2)*float64(n-1)/float64(n-k-1)

	return RegressionResult{
		Intercept:        beta[0],
		Coefficients:     beta[1:],
		RSquared:         r2,
		AdjustedRSquared: adjusted,
	}, nil
}

// rSquared converts residual/total sums of squares into a coefficient of
// determination clamped to [0,1]. A constant y (ssTot == 0) reports 0.
func rSquared(ssRes, ssTot float64) float64 {
	if ssTot == 0 {
		return 0
	}
	r2 := 1 - ssRes/ssTot
	if r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}
	return r2
}
