// Package fixedincome values coupon bonds: present-value pricing, yield to
// maturity via Newton-Raphson, and the duration/convexity risk measures.
package fixedincome

import "math"

// Periodic yields below this magnitude are treated as zero to avoid dividing
// by the annuity denominator.
const zeroYieldEps = 1e-10

// Price computes the present value of b at the given annual yield:
//
//	price = coupon (1 - (1+y)^-n)/y + face (1+y)^-n
//
// with y the periodic yield. At y ≈ 0 the annuity form degenerates to the
// undiscounted sum face + coupon*n.
func Price(b Bond, yield float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return priceAtYield(b, yield), nil
}

// priceAtYield is the unchecked pricing core shared by the solvers.
func priceAtYield(b Bond, yield float64) float64 {
	coupon := b.CouponPayment()
	n := b.Periods()
	py := yield / float64(b.Frequency)

	if math.Abs(py) < zeroYieldEps {
		return b.FaceValue + coupon*float64(n)
	}

	df := math.Pow(1+py, -float64(n))
	return coupon*(1-df)/py + b.FaceValue*df
}

// priceDerivative is the analytic derivative of priceAtYield with respect to
// the annual yield (chain rule through the periodic yield). Closed form, not
// a numeric difference.
func priceDerivative(b Bond, yield float64) float64 {
	coupon := b.CouponPayment()
	n := b.Periods()
	py := yield / float64(b.Frequency)

	var d float64
	for i := 1; i <= n; i++ {
		cf := coupon
		if i == n {
			cf += b.FaceValue
		}
		d -= float64(i) * cf / math.Pow(1+py, float64(i)+1)
	}
	return d / float64(b.Frequency)
}
