package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestImpliedVol_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Contract
	}{
		{"atm call 20 vol", Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Vol: 0.2, Type: Call}},
		{"otm put 35 vol", Contract{Spot: 100, Strike: 90, Expiry: 0.5, Rate: 0.02, Vol: 0.35, Type: Put}},
		{"long dated 15 vol", Contract{Spot: 50, Strike: 60, Expiry: 3, Rate: 0.04, Vol: 0.15, Type: Call}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market, err := Price(tt.c)
			require.NoError(t, err)

			res, err := ImpliedVol(tt.c, market, DefaultImpliedVolConfig())
			require.NoError(t, err)

			assert.True(t, res.Converged)
			assert.InDelta(t, tt.c.Vol, res.Vol, 1e-3)
			t.Logf("true vol=%.4f implied=%.6f iterations=%d", tt.c.Vol, res.Vol, res.Iterations)
		})
	}
}

func TestImpliedVol_FirstMidpointConvergesAtZeroIterations(t *testing.T) {
	// Price the contract at the search bracket's center so the very first
	// midpoint already matches; no halvings are needed, mirroring how the
	// yield solver reports a par bond.
	c := Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Type: Call}
	c.Vol = (minImpliedVol + maxImpliedVol) / 2

	market, err := Price(c)
	require.NoError(t, err)

	res, err := ImpliedVol(c, market, DefaultImpliedVolConfig())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.InDelta(t, c.Vol, res.Vol, 1e-9)
}

func TestImpliedVol_BestEffortOnNonConvergence(t *testing.T) {
	c := Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Type: Call}

	// One iteration cannot bracket anything; the result must still carry the
	// last midpoint rather than fail.
	res, err := ImpliedVol(c, 10.45, ImpliedVolConfig{Tolerance: 1e-12, MaxIterations: 1})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Greater(t, res.Vol, 0.0)
}

func TestImpliedVol_InvalidMarketPrice(t *testing.T) {
	c := Contract{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Type: Call}
	_, err := ImpliedVol(c, -5, DefaultImpliedVolConfig())
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}
