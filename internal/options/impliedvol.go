package options

import (
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// Bisection search bounds for implied volatility.
const (
	minImpliedVol = 0.001
	maxImpliedVol = 5.0
)

// ImpliedVol recovers the volatility that reproduces marketPrice under
// Black-Scholes, by bisection over [0.001, 5.0]. The Vol field of the
// contract is ignored.
//
// The search is lenient on purpose: when the interval does not close within
// cfg.MaxIterations, the last midpoint is returned with Converged=false
// instead of an error. Callers that need a guarantee must check the flag.
func ImpliedVol(c Contract, marketPrice float64, cfg ImpliedVolConfig) (ImpliedVolResult, error) {
	if err := quanterr.Positive("marketPrice", marketPrice); err != nil {
		return ImpliedVolResult{}, err
	}
	c.Vol = 1 // placeholder so the shared input check passes
	if err := c.check(); err != nil {
		return ImpliedVolResult{}, err
	}

	lo, hi := minImpliedVol, maxImpliedVol
	mid := (lo + hi) / 2

	for i := 0; i < cfg.MaxIterations; i++ {
		mid = (lo + hi) / 2
		c.Vol = mid

		price, err := Price(c)
		if err != nil {
			return ImpliedVolResult{}, err
		}

		diff := price - marketPrice
		if math.Abs(diff) < cfg.Tolerance {
			// Iterations counts interval halvings performed before the
			// accepted midpoint, zero when the first midpoint already fits.
			return ImpliedVolResult{Vol: mid, Converged: true, Iterations: i}, nil
		}

		if diff > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}

	// Best effort: last midpoint, flagged as unconverged.
	return ImpliedVolResult{Vol: mid, Converged: false, Iterations: cfg.MaxIterations}, nil
}
