package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

func TestEfficientFrontier(t *testing.T) {
	vols := []float64{0.10, 0.12, 0.15, 0.18, 0.22}
	rets := []float64{0.05, 0.07, 0.09, 0.11, 0.13}

	img, err := EfficientFrontier(vols, rets)
	require.NoError(t, err)

	assert.NotEmpty(t, img)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img[:4])
}

func TestEfficientFrontier_Errors(t *testing.T) {
	_, err := EfficientFrontier(nil, nil)
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)

	_, err = EfficientFrontier([]float64{0.1, 0.2}, []float64{0.05})
	assert.ErrorIs(t, err, quanterr.ErrInvalidInput)
}

func TestPriceYield(t *testing.T) {
	yields := []float64{0.01, 0.03, 0.05, 0.07, 0.09}
	prices := []float64{1350, 1160, 1000, 870, 760}

	img, err := PriceYield(yields, prices)
	require.NoError(t, err)
	assert.NotEmpty(t, img)
}
