package fixedincome

import (
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// Newton-Raphson aborts when the price derivative flattens below this; the
// iteration would otherwise blow up.
const flatDerivativeEps = 1e-10

// YieldToMaturity solves for the annual yield that reprices b to marketPrice.
//
// Newton-Raphson seeded at the coupon rate, using the analytic price
// derivative; each step is clamped to [-1, 1] to keep the search in a
// financially meaningful domain. There is no fallback bisection: a flat
// derivative or exhausted iteration budget returns the last estimate with
// Converged=false, never an error. This is a known robustness gap kept for
// behavioral parity with the original pricing stack.
func YieldToMaturity(b Bond, marketPrice float64, cfg YTMConfig) (YTMResult, error) {
	if err := b.check(); err != nil {
		return YTMResult{}, err
	}
	if err := quanterr.Positive("marketPrice", marketPrice); err != nil {
		return YTMResult{}, err
	}

	ytm := b.CouponRate

	for i := 0; i < cfg.MaxIterations; i++ {
		diff := priceAtYield(b, ytm) - marketPrice
		if math.Abs(diff) < cfg.Tolerance {
			return YTMResult{Yield: ytm, Converged: true, Iterations: i}, nil
		}

		derivative := priceDerivative(b, ytm)
		if math.Abs(derivative) < flatDerivativeEps {
			// Flat region, the step would be meaningless.
			return YTMResult{Yield: ytm, Converged: false, Iterations: i}, nil
		}

		ytm -= diff / derivative

		// Keep the search inside a sane yield range.
		if ytm > 1 {
			ytm = 1
		} else if ytm < -1 {
			ytm = -1
		}
	}

	return YTMResult{Yield: ytm, Converged: false, Iterations: cfg.MaxIterations}, nil
}
