package options

import "math"

// CalcGreeks computes the analytic Black-Scholes sensitivities for c.
// These are exact partial derivatives of the closed form, not
// finite-difference approximations; the d2 sign in theta and rho flips with
// the option type.
func CalcGreeks(c Contract) (Greeks, error) {
	if err := c.check(); err != nil {
		return Greeks{}, err
	}

	d1, d2 := dValues(c)
	sqrtT := math.Sqrt(c.Expiry)
	discount := math.Exp(-c.Rate * c.Expiry)
	pdf := normPDF(d1)

	g := Greeks{
		Gamma: pdf / (c.Spot * c.Vol * sqrtT),
		// per 1% vol move
		Vega: c.Spot * pdf * sqrtT / 100,
	}

	timeDecay := -c.Spot * pdf * c.Vol / (2 * sqrtT)

	switch c.Type {
	case Call:
		g.Delta = normCDF(d1)
		// per calendar day
		g.Theta = (timeDecay - c.Rate*c.Strike*discount*normCDF(d2)) / 365
		// per 1% rate move
		g.Rho = c.Strike * c.Expiry * discount * normCDF(d2) / 100
	default:
		g.Delta = normCDF(d1) - 1
		g.Theta = (timeDecay + c.Rate*c.Strike*discount*normCDF(-d2)) / 365
		g.Rho = -c.Strike * c.Expiry * discount * normCDF(-d2) / 100
	}

	return g, nil
}
