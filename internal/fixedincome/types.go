package fixedincome

import (
	"fmt"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Bond
// =============================================================================

// Bond describes a plain coupon bond.
type Bond struct {
	FaceValue       float64 `json:"face_value"`        // redemption amount
	CouponRate      float64 `json:"coupon_rate"`       // annual coupon rate (0.05 = 5%)
	YearsToMaturity float64 `json:"years_to_maturity"` // remaining life in years
	Frequency       int     `json:"frequency"`         // coupon payments per year
}

// CouponPayment is the cash amount of one coupon.
func (b Bond) CouponPayment() float64 {
	return b.FaceValue * b.CouponRate / float64(b.Frequency)
}

// Periods is the total number of coupon periods to maturity.
func (b Bond) Periods() int {
	return int(b.YearsToMaturity * float64(b.Frequency))
}

func (b Bond) check() error {
	if err := quanterr.Positive("faceValue", b.FaceValue); err != nil {
		return err
	}
	if b.CouponRate < 0 {
		return fmt.Errorf("%w: couponRate must not be negative, got %v",
			quanterr.ErrInvalidInput, b.CouponRate)
	}
	if err := quanterr.Positive("yearsToMaturity", b.YearsToMaturity); err != nil {
		return err
	}
	if b.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %d",
			quanterr.ErrInvalidInput, b.Frequency)
	}
	return nil
}

// =============================================================================
// Solver types
// =============================================================================

// YTMResult is the outcome of the Newton-Raphson yield search.
// Converged=false means the search exhausted its iterations or hit a flat
// derivative; Yield then holds the last estimate and must be treated as
// best-effort.
type YTMResult struct {
	Yield      float64 `json:"yield"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// YTMConfig tunes the Newton-Raphson search.
type YTMConfig struct {
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"max_iterations"`
}

// DefaultYTMConfig returns the standard solver settings.
func DefaultYTMConfig() YTMConfig {
	return YTMConfig{
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// DefaultYieldShift is the bump used by the effective (finite-difference)
// duration and convexity measures.
const DefaultYieldShift = 0.01
