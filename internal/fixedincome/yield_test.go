package fixedincome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestYieldToMaturity_RoundTrip(t *testing.T) {
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	for _, y := range []float64{0.02, 0.04, 0.05, 0.06, 0.09} {
		price, err := Price(b, y)
		require.NoError(t, err)

		res, err := YieldToMaturity(b, price, DefaultYTMConfig())
		require.NoError(t, err)

		assert.True(t, res.Converged, "yield %v", y)
		assert.InDelta(t, y, res.Yield, 1e-4, "yield %v", y)
		t.Logf("true=%.4f solved=%.6f iterations=%d", y, res.Yield, res.Iterations)
	}
}

func TestYieldToMaturity_ParBondConvergesImmediately(t *testing.T) {
	// The solver is seeded at the coupon rate, which is already the answer.
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	res, err := YieldToMaturity(b, 1000, DefaultYTMConfig())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.InDelta(t, 0.05, res.Yield, 1e-9)
}

func TestYieldToMaturity_BestEffortOnExhaustedIterations(t *testing.T) {
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	res, err := YieldToMaturity(b, 850, YTMConfig{Tolerance: 1e-15, MaxIterations: 2})
	require.NoError(t, err)

	// Two Newton steps cannot hit 1e-15; the last estimate is returned and
	// flagged, not turned into an error.
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
}

func TestYieldToMaturity_InvalidInputs(t *testing.T) {
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	_, err := YieldToMaturity(b, 0, DefaultYTMConfig())
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	b.Frequency = 0
	_, err = YieldToMaturity(b, 1000, DefaultYTMConfig())
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}
