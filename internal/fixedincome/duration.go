package fixedincome

import "math"

// =============================================================================
// Duration
// =============================================================================

// MacaulayDuration is the present-value-weighted average time to each
// cashflow, in years.
func MacaulayDuration(b Bond, yield float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}

	coupon := b.CouponPayment()
	n := b.Periods()
	py := yield / float64(b.Frequency)
	price := priceAtYield(b, yield)

	var weighted float64
	for i := 1; i <= n; i++ {
		cf := coupon
		if i == n {
			cf += b.FaceValue
		}
		pv := cf / math.Pow(1+py, float64(i))
		weighted += float64(i) / float64(b.Frequency) * pv
	}

	return weighted / price, nil
}

// ModifiedDuration rescales Macaulay duration by one periodic discount step.
// It is the first-order sensitivity of price to yield.
func ModifiedDuration(b Bond, yield float64) (float64, error) {
	mac, err := MacaulayDuration(b, yield)
	if err != nil {
		return 0, err
	}
	py := yield / float64(b.Frequency)
	return mac / (1 + py), nil
}

// EffectiveDuration approximates duration with a symmetric finite
// difference:
//
//	-(P(y+d) - P(y-d)) / (2 P(y) d)
//
// Useful as a model-free cross-check of the analytic measures.
func EffectiveDuration(b Bond, yield, shift float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	if shift == 0 {
		shift = DefaultYieldShift
	}

	up := priceAtYield(b, yield+shift)
	down := priceAtYield(b, yield-shift)
	base := priceAtYield(b, yield)

	return -(up - down) / (2 * base * shift), nil
}
