package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestExpectedReturn(t *testing.T) {
	got, err := ExpectedReturn([]float64{0.1, 0.2, 0.3}, []float64{0.5, 0.3, 0.2})
	require.NoError(t, err)
	assert.InDelta(t, 0.17, got, 1e-9)
}

func TestExpectedReturn_Errors(t *testing.T) {
	_, err := ExpectedReturn(nil, nil)
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	_, err = ExpectedReturn([]float64{0.1, 0.2}, []float64{1})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}

func TestVariance(t *testing.T) {
	cov := [][]float64{
		{0.04, 0.01},
		{0.01, 0.09},
	}
	weights := []float64{0.5, 0.5}

	got, err := Variance(cov, weights)
	require.NoError(t, err)

	// 0.25*0.04 + 2*0.25*0.01 + 0.25*0.09
	assert.InDelta(t, 0.0375, got, 1e-9)
}

func TestVariance_DimensionErrors(t *testing.T) {
	// Row count mismatch.
	_, err := Variance([][]float64{{0.04}}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	// Ragged row.
	_, err = Variance([][]float64{{0.04, 0.01}, {0.01}}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}

func TestSharpeRatio(t *testing.T) {
	assert.InDelta(t, 0.5, SharpeRatio(0.12, 0.02, 0.2), 1e-9)

	// Zero volatility is defined as zero, not NaN.
	assert.Equal(t, 0.0, SharpeRatio(0.12, 0.02, 0))
}

func TestConstraints_Satisfied(t *testing.T) {
	cons := DefaultConstraints()

	tests := []struct {
		name    string
		weights []float64
		want    bool
	}{
		{"valid equal weights", []float64{0.25, 0.25, 0.25, 0.25}, true},
		{"sum within tolerance", []float64{0.3, 0.3, 0.405}, true},
		{"sum too high", []float64{0.6, 0.6}, false},
		{"negative weight under long-only", []float64{1.2, -0.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cons.Satisfied(tt.weights))
		})
	}
}

func TestConstraints_PerAssetBounds(t *testing.T) {
	cons := Constraints{
		LongOnly:   true,
		MinWeight:  0,
		MaxWeight:  1,
		MinWeights: []float64{0.1, 0.0, 0.0},
		MaxWeights: []float64{0.5, 0.5, 1.0},
	}

	assert.True(t, cons.Satisfied([]float64{0.3, 0.3, 0.4}))
	// First asset below its floor.
	assert.False(t, cons.Satisfied([]float64{0.05, 0.45, 0.5}))
	// Second asset above its cap.
	assert.False(t, cons.Satisfied([]float64{0.2, 0.6, 0.2}))
}

func TestConstraints_UniformBounds(t *testing.T) {
	cons := Constraints{MinWeight: 0.1, MaxWeight: 0.4}

	assert.True(t, cons.Satisfied([]float64{0.3, 0.3, 0.4}))
	assert.False(t, cons.Satisfied([]float64{0.5, 0.25, 0.25}))
	assert.False(t, cons.Satisfied([]float64{0.05, 0.55, 0.4}))
}
