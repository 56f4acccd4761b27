package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	cov, err := Covariance(x, y)
	require.NoError(t, err)

	// var(x) = 2.5 with the n-1 denominator, y = 2x so cov = 5.
	assert.InDelta(t, 5.0, cov, 1e-9)
}

func TestCovariance_Errors(t *testing.T) {
	_, err := Covariance([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	_, err = Covariance([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	perfect, err := Correlation(x, []float64{2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-9)

	inverse, err := Correlation(x, []float64{10, 8, 6, 4, 2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, inverse, 1e-9)
}

func TestCorrelation_ZeroVarianceIsZero(t *testing.T) {
	got, err := Correlation([]float64{1, 2, 3}, []float64{7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCovarianceMatrix(t *testing.T) {
	series := [][]float64{
		{0.01, 0.02, -0.01, 0.03},
		{0.02, 0.01, 0.00, 0.02},
		{-0.01, 0.03, 0.02, -0.02},
	}

	matrix, err := CovarianceMatrix(series)
	require.NoError(t, err)
	require.Len(t, matrix, 3)

	for i := range matrix {
		require.Len(t, matrix[i], 3)
		// Diagonal is the sample variance.
		assert.InDelta(t, Variance(series[i]), matrix[i][i], 1e-12)
		for j := range matrix[i] {
			// Symmetry.
			assert.Equal(t, matrix[i][j], matrix[j][i])
		}
	}
}

func TestCovarianceMatrix_Errors(t *testing.T) {
	_, err := CovarianceMatrix(nil)
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	_, err = CovarianceMatrix([][]float64{{0.01, 0.02}, {0.01}})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}

func TestStdDev(t *testing.T) {
	assert.InDelta(t, 1.5811, StdDev([]float64{1, 2, 3, 4, 5}), 1e-4)
	assert.Equal(t, 0.0, StdDev([]float64{42}))
}
