package portfolio

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// WeightSumTolerance is how far the weight sum may drift from 1 before a
// candidate is rejected.
const WeightSumTolerance = 0.01

// Constraints defines the weight constraints an optimizer candidate must
// satisfy. Scalar Min/MaxWeight apply uniformly; the per-asset vectors, when
// set, override them for individual assets.
type Constraints struct {
	LongOnly   bool      `json:"long_only"`             // w >= 0 for every asset
	MinWeight  float64   `json:"min_weight"`            // uniform lower bound
	MaxWeight  float64   `json:"max_weight"`            // uniform upper bound
	MinWeights []float64 `json:"min_weights,omitempty"` // per-asset lower bounds
	MaxWeights []float64 `json:"max_weights,omitempty"` // per-asset upper bounds
}

// DefaultConstraints returns a long-only, fully-invested constraint set.
func DefaultConstraints() Constraints {
	return Constraints{
		LongOnly:  true,
		MinWeight: 0,
		MaxWeight: 1,
	}
}

// validate checks the per-asset bound vectors against the asset count.
func (c Constraints) validate(numAssets int) error {
	if c.MinWeights != nil && len(c.MinWeights) != numAssets {
		return fmt.Errorf("%w: minWeights has length %d, want %d",
			quanterr.ErrInvalidInput, len(c.MinWeights), numAssets)
	}
	if c.MaxWeights != nil && len(c.MaxWeights) != numAssets {
		return fmt.Errorf("%w: maxWeights has length %d, want %d",
			quanterr.ErrInvalidInput, len(c.MaxWeights), numAssets)
	}
	return nil
}

// Satisfied reports whether weights is a valid candidate: sum within
// WeightSumTolerance of 1 and every bound respected. Any violation
// invalidates the whole vector.
func (c Constraints) Satisfied(weights []float64) bool {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > WeightSumTolerance {
		return false
	}

	for i, w := range weights {
		if c.LongOnly && w < 0 {
			return false
		}
		lo, hi := c.MinWeight, c.MaxWeight
		if c.MinWeights != nil {
			lo = c.MinWeights[i]
		}
		if c.MaxWeights != nil {
			hi = c.MaxWeights[i]
		}
		if w < lo || w > hi {
			return false
		}
	}
	return true
}
