// Package risk computes distribution-based risk measures over return and
// price series: historical and parametric VaR/CVaR, maximum drawdown, and
// realized performance statistics.
package risk

import (
	"math"
	"sort"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Historical Simulation VaR
// =============================================================================

// HistoricalVaR computes VaR/CVaR from a realized return series by
// historical simulation: sort ascending, take the (1-confidence) percentile
// as VaR and the mean of the tail at or below it as CVaR.
func HistoricalVaR(returns []float64, confidence float64) (VaRResult, error) {
	if err := quanterr.NotEmpty("returns", len(returns)); err != nil {
		return VaRResult{}, err
	}
	if err := quanterr.InUnitInterval("confidence", confidence); err != nil {
		return VaRResult{}, err
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	// (1-confidence) percentile index; losses sit at the front.
	idx := int(math.Floor((1 - confidence) * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}

	var varValue float64
	if sorted[idx] < 0 {
		varValue = -sorted[idx]
	}

	return VaRResult{
		Confidence: confidence,
		VaR:        varValue,
		CVaR:       tailCVaR(sorted, idx),
	}, nil
}

// tailCVaR is the mean loss of the sorted tail up to and including varIdx,
// expressed as a positive number.
func tailCVaR(sorted []float64, varIdx int) float64 {
	if len(sorted) == 0 || varIdx < 0 {
		return 0
	}

	var sum float64
	count := 0
	for i := 0; i <= varIdx && i < len(sorted); i++ {
		sum += sorted[i]
		count++
	}
	if count == 0 {
		return 0
	}

	avg := sum / float64(count)
	if avg < 0 {
		return -avg
	}
	return 0
}

// =============================================================================
// Parametric VaR (normal assumption)
// =============================================================================

// ParametricVaR computes VaR/CVaR under a normal-returns assumption from the
// series mean and standard deviation.
func ParametricVaR(mean, stdDev, confidence float64) (VaRResult, error) {
	if err := quanterr.InUnitInterval("confidence", confidence); err != nil {
		return VaRResult{}, err
	}

	z := NormInv(confidence)

	// The mean term is negligible at daily horizons; z*sigma is used directly.
	varValue := z * stdDev
	if varValue < 0 {
		varValue = 0
	}

	// CVaR = VaR + sigma*phi(z)/(1-confidence) under normality.
	cvar := varValue + stdDev*NormPDF(z)/(1-confidence)

	return VaRResult{Confidence: confidence, VaR: varValue, CVaR: cvar}, nil
}

// =============================================================================
// Statistics helpers
// =============================================================================

// Mean is the arithmetic mean, 0 for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev is the sample standard deviation (n-1 denominator).
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Percentile interpolates the p-th percentile (0..100) of an ascending
// sorted series.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	idx := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// NormInv is the standard normal quantile function
// (Beasley-Springer-Moro approximation), with fast paths for the common
// confidence levels.
func NormInv(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}

	switch p {
	case 0.99:
		return 2.326
	case 0.95:
		return 1.645
	case 0.90:
		return 1.282
	case 0.975:
		return 1.96
	}

	a := []float64{
		-3.969683028665376e+01,
		2.209460984245205e+02,
		-2.759285104469687e+02,
		1.383577518672690e+02,
		-3.066479806614716e+01,
		2.506628277459239e+00,
	}
	b := []float64{
		-5.447609879822406e+01,
		1.615858368580409e+02,
		-1.556989798598866e+02,
		6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	c := []float64{
		-7.784894002430293e-03,
		-3.223964580411365e-01,
		-2.400758277161838e+00,
		-2.549732539343734e+00,
		4.374664141464968e+00,
		2.938163982698783e+00,
	}
	d := []float64{
		7.784695709041462e-03,
		3.224671290700398e-01,
		2.445134137142996e+00,
		3.754408661907416e+00,
	}

	pLow := 0.02425
	pHigh := 1 - pLow

	var q, r float64

	switch {
	case p < pLow:
		q = math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p <= pHigh:
		q = p - 0.5
		r = q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	default:
		q = math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}
}

// NormPDF is the standard normal density.
func NormPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
