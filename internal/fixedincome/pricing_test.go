package fixedincome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestPrice_ParBond(t *testing.T) {
	// Coupon rate equal to yield prices at par.
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	price, err := Price(b, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, 1000, price, 1e-6)
	t.Logf("par bond price = %.6f", price)
}

func TestPrice_MonotonicInYield(t *testing.T) {
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	yields := []float64{0.01, 0.02, 0.03, 0.05, 0.07, 0.1, 0.15}
	var prev float64
	for i, y := range yields {
		price, err := Price(b, y)
		require.NoError(t, err)
		if i > 0 {
			assert.Less(t, price, prev, "yield %v should price below yield %v", y, yields[i-1])
		}
		prev = price
	}
}

func TestPrice_ZeroYieldDegenerate(t *testing.T) {
	b := Bond{FaceValue: 1000, CouponRate: 0.04, YearsToMaturity: 5, Frequency: 2}

	price, err := Price(b, 0)
	require.NoError(t, err)

	// Undiscounted: face + coupon * periods = 1000 + 20*10.
	assert.InDelta(t, 1200, price, 1e-9)
}

func TestPrice_DiscountAndPremium(t *testing.T) {
	b := Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}

	discount, err := Price(b, 0.07)
	require.NoError(t, err)
	premium, err := Price(b, 0.03)
	require.NoError(t, err)

	assert.Less(t, discount, 1000.0)
	assert.Greater(t, premium, 1000.0)
}

func TestPrice_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		b    Bond
	}{
		{"zero face", Bond{FaceValue: 0, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 2}},
		{"negative coupon", Bond{FaceValue: 1000, CouponRate: -0.01, YearsToMaturity: 10, Frequency: 2}},
		{"zero maturity", Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 0, Frequency: 2}},
		{"zero frequency", Bond{FaceValue: 1000, CouponRate: 0.05, YearsToMaturity: 10, Frequency: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price(tt.b, 0.05)
			assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
		})
	}
}
