package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestSimpleRegression_PerfectFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11} // y = 2x + 1 exactly

	fit, err := SimpleRegression(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, fit.Coefficients[0], 1e-9)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	assert.InDelta(t, 0.0, fit.StandardError, 1e-9)
}

func TestSimpleRegression_NoisyFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := []float64{2.9, 5.2, 6.8, 9.1, 11.2, 12.8, 15.1, 17.0}

	fit, err := SimpleRegression(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, fit.Coefficients[0], 0.1)
	assert.GreaterOrEqual(t, fit.RSquared, 0.0)
	assert.LessOrEqual(t, fit.RSquared, 1.0)
	assert.Greater(t, fit.StandardError, 0.0)
	t.Logf("slope=%.4f intercept=%.4f r2=%.4f se=%.4f",
		fit.Coefficients[0], fit.Intercept, fit.RSquared, fit.StandardError)
}

func TestSimpleRegression_Errors(t *testing.T) {
	_, err := SimpleRegression([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	_, err = SimpleRegression([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	// Constant regressor is undefined, not invalid.
	_, err = SimpleRegression([]float64{3, 3, 3, 3}, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, quanterr.ErrUndefined)
}

func TestMultipleRegression_RecoversCoefficients(t *testing.T) {
	// y = 1 + 2*f1 - 3*f2, exact.
	f1 := []float64{1, 2, 3, 4, 5, 6, 7}
	f2 := []float64{2, 1, 4, 3, 6, 5, 8}
	y := make([]float64, len(f1))
	for i := range y {
		y[i] = 1 + 2*f1[i] - 3*f2[i]
	}

	fit, err := MultipleRegression([][]float64{f1, f2}, y)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, fit.Intercept, 1e-8)
	assert.InDelta(t, 2.0, fit.Coefficients[0], 1e-8)
	assert.InDelta(t, -3.0, fit.Coefficients[1], 1e-8)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	assert.LessOrEqual(t, fit.AdjustedRSquared, 1.0)
}

func TestMultipleRegression_SingularMatrix(t *testing.T) {
	// Second factor is an exact copy of the first: X'X is singular.
	f1 := []float64{1, 2, 3, 4, 5, 6}
	f2 := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{1, 2, 3, 4, 5, 6}

	_, err := MultipleRegression([][]float64{f1, f2}, y)
	assert.ErrorIs(t, err, quanterr.ErrUndefined)
}

func TestMultipleRegression_Errors(t *testing.T) {
	_, err := MultipleRegression(nil, []float64{1, 2, 3})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	_, err = MultipleRegression([][]float64{{1, 2}}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	// Too few observations for the factor count.
	_, err = MultipleRegression([][]float64{{1, 2, 3}, {2, 1, 2}}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}

func TestRSquared_Clamping(t *testing.T) {
	assert.Equal(t, 0.0, rSquared(5, 0))
	assert.Equal(t, 1.0, rSquared(0, 5))
	assert.Equal(t, 0.0, rSquared(10, 5)) // worse than the mean clamps to 0
}
