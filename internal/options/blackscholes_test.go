package options

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestPrice_ATMCall(t *testing.T) {
	c := Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Vol: 0.2, Type: Call}

	price, err := Price(c)
	require.NoError(t, err)

	// Textbook value for these parameters.
	assert.InDelta(t, 10.45, price, 0.01)
	t.Logf("BS(100, 100, 1, 0.05, 0.2, call) = %.4f", price)
}

func TestPrice_PutCallParity(t *testing.T) {
	tests := []struct {
		name                         string
		spot, strike, expiry, r, vol float64
	}{
		{"at the money", 100, 100, 1, 0.05, 0.2},
		{"in the money call", 120, 100, 0.5, 0.03, 0.25},
		{"out of the money call", 80, 100, 2, 0.01, 0.4},
		{"short dated", 50, 55, 0.05, 0.02, 0.3},
		{"negative rate", 100, 95, 1.5, -0.01, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Contract{Spot: tt.spot, Strike: tt.strike, Expiry: tt.expiry, Rate: tt.r, Vol: tt.vol}

			base.Type = Call
			call, err := Price(base)
			require.NoError(t, err)

			base.Type = Put
			put, err := Price(base)
			require.NoError(t, err)

			// call - put = S - K e^{-rT}
			parity := tt.spot - tt.strike*math.Exp(-tt.r*tt.expiry)
			assert.InDelta(t, parity, call-put, 1e-6)
		})
	}
}

func TestPrice_InvalidInputs(t *testing.T) {
	valid := Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Vol: 0.2, Type: Call}

	tests := []struct {
		name   string
		mutate func(*Contract)
	}{
		{"zero spot", func(c *Contract) { c.Spot = 0 }},
		{"negative strike", func(c *Contract) { c.Strike = -10 }},
		{"zero expiry", func(c *Contract) { c.Expiry = 0 }},
		{"negative vol", func(c *Contract) { c.Vol = -0.2 }},
		{"unknown type", func(c *Contract) { c.Type = "straddle" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			_, err := Price(c)
			assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
		})
	}

	// Negative rate alone is fine.
	c := valid
	c.Rate = -0.02
	_, err := Price(c)
	assert.NoError(t, err)
}

func TestNormCDF(t *testing.T) {
	// Abramowitz-Stegun approximation: ~1e-7 against the exact erf form.
	for _, x := range []float64{-3, -1.5, -0.5, 0, 0.5, 1, 2, 3.5} {
		exact := 0.5 * (1 + math.Erf(x/math.Sqrt2))
		assert.InDelta(t, exact, normCDF(x), 1e-6, "x=%v", x)
	}

	// The rational approximation carries ~5e-10 of error at x=0, which
	// doubles when the two halves are summed.
	assert.InDelta(t, 0.5, normCDF(0), 1e-9)
	assert.InDelta(t, 1.0, normCDF(0)+normCDF(0), 1e-8)
	// Symmetry: N(x) + N(-x) = 1.
	assert.InDelta(t, 1.0, normCDF(1.234)+normCDF(-1.234), 1e-9)
}
