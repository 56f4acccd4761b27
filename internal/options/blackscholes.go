// Package options prices European and American equity options and their
// sensitivities: Black-Scholes closed form, a Cox-Ross-Rubinstein binomial
// lattice, analytic Greeks and bisection implied volatility.
package options

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Black-Scholes closed form
// =============================================================================

// Price computes the Black-Scholes value of a European option.
//
//	d1 = (ln(S/K) + (r + sigma^2/2)T) / (sigma sqrt(T))
//	d2 = d1 - sigma sqrt(T)
//	call = S N(d1) - K e^{-rT} N(d2)
//	put  = K e^{-rT} N(-d2) - S N(-d1)
func Price(c Contract) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}

	d1, d2 := dValues(c)
	discount := math.Exp(-c.Rate * c.Expiry)

	switch c.Type {
	case Call:
		return c.Spot*normCDF(d1) - c.Strike*discount*normCDF(d2), nil
	default:
		return c.Strike*discount*normCDF(-d2) - c.Spot*normCDF(-d1), nil
	}
}

// dValues returns the d1/d2 terms shared by pricing and the Greeks.
func dValues(c Contract) (float64, float64) {
	sqrtT := math.Sqrt(c.Expiry)
	d1 := (math.Log(c.Spot/c.Strike) + (c.Rate+c.Vol*c.Vol/2)*c.Expiry) / (c.Vol * sqrtT)
	d2 := d1 - c.Vol*sqrtT
	return d1, d2
}

func (c Contract) check() error {
	if err := quanterr.Positive("spot", c.Spot); err != nil {
		return err
	}
	if err := quanterr.Positive("strike", c.Strike); err != nil {
		return err
	}
	if err := quanterr.Positive("expiry", c.Expiry); err != nil {
		return err
	}
	if err := quanterr.Positive("vol", c.Vol); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: option type must be call or put, got %q",
			quanterr.ErrInvalidInput, c.Type)
	}
	return nil
}

// =============================================================================
// Standard normal distribution
// =============================================================================

// normCDF is the standard normal cumulative distribution function, computed
// with the Abramowitz-Stegun 26.2.17 rational approximation (~1e-7 absolute
// error). Kept self-contained on purpose: every price and Greek in this
// package is tied to this precision class, and swapping in erf would move
// option values at the 6th-7th decimal.
func normCDF(x float64) float64 {
	const (
		a1 = 0.31938153
		a2 = -0.356563782
		a3 = 1.781477937
		a4 = -1.821255978
		a5 = 1.330274429
	)

	l := math.Abs(x)
	k := 1.0 / (1.0 + 0.2316419*l)
	poly := a1*k + a2*k*k + a3*math.Pow(k, 3) + a4*math.Pow(k, 4) + a5*math.Pow(k, 5)
	w := 1.0 - normPDF(l)*poly

	if x < 0 {
		return 1.0 - w
	}
	return w
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
