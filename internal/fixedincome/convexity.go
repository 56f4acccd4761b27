package fixedincome

import "math"

// =============================================================================
// Convexity
// =============================================================================

// Convexity computes analytic convexity in years^2: cashflow present values
// weighted by t(t+1) in periods, normalized by PV (1+y)^2 and converted by
// the squared coupon frequency.
func Convexity(b Bond, yield float64) (float64, error) {
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
		weighted += float64(i) * float64(i+1) * pv
	}

	perPeriod := weighted / (price * (1 + py) * (1 + py))
	freq := float64(b.Frequency)
	return perPeriod / (freq * freq), nil
}

// EffectiveConvexity approximates convexity with a symmetric second
// difference:
//
//	(P(y+d) + P(y-d) - 2 P(y)) / (P(y) d^2)
func EffectiveConvexity(b Bond, yield, shift float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	if shift == 0 {
		shift = DefaultYieldShift
	}

	up := priceAtYield(b, yield+shift)
	down := priceAtYield(b, yield-shift)
	base := priceAtYield(b, yield)

	return (up + down - 2*base) / (base * shift * shift), nil
}

// EstimatePriceChange is the second-order Taylor approximation of the price
// move for a yield shift dy:
//
//	dP ≈ P (-D_mod dy + 1/2 C dy^2)
func EstimatePriceChange(b Bond, yield, yieldShift float64) (float64, error) {
	modDur, err := ModifiedDuration(b, yield)
	if err != nil {
		return 0, err
	}
	conv, err := Convexity(b, yield)
	if err != nil {
		return 0, err
	}

	price := priceAtYield(b, yield)
	return price * (-modDur*yieldShift + 0.5*conv*yieldShift*yieldShift), nil
}
