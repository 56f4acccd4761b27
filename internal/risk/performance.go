package risk

import (
	"math"
	"sort"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Drawdown
// =============================================================================

// MaxDrawdown is the largest peak-to-trough decline of a chronological price
// series, expressed as a positive fraction of the peak. Order matters: the
// trough must come after the peak.
func MaxDrawdown(prices []float64) (float64, error) {
	if err := quanterr.NotEmpty("prices", len(prices)); err != nil {
		return 0, err
	}

	peak := prices[0]
	var maxDD float64
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			dd := (peak - p) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD, nil
}

// =============================================================================
// Realized performance
// =============================================================================

// Analyze summarizes a daily return series: cumulative and annualized
// return, annualized volatility, Sharpe, Sortino, the median daily return,
// and the max drawdown of the implied equity curve.
func Analyze(dailyReturns []float64, riskFreeRate float64) (PerformanceReport, error) {
	if err := quanterr.NotEmpty("dailyReturns", len(dailyReturns)); err != nil {
		return PerformanceReport{}, err
	}

	report := PerformanceReport{}

	// Cumulative return and the equity curve for the drawdown measure.
	equity := make([]float64, 0, len(dailyReturns)+1)
	nav := 1.0
	equity = append(equity, nav)
	for _, r := range dailyReturns {
		nav *= 1 + r
		equity = append(equity, nav)
	}
	report.TotalReturn = nav - 1
	report.AnnualizedReturn = annualize(report.TotalReturn, len(dailyReturns))
	report.Volatility = StdDev(dailyReturns) * math.Sqrt(TradingDaysPerYear)

	if report.Volatility > 0 {
		report.Sharpe = (report.AnnualizedReturn - riskFreeRate) / report.Volatility
	}
	report.Sortino = sortino(dailyReturns, report.AnnualizedReturn, riskFreeRate)

	sorted := make([]float64, len(dailyReturns))
	copy(sorted, dailyReturns)
	sort.Float64s(sorted)
	report.MedianReturn = Percentile(sorted, 50)

	dd, err := MaxDrawdown(equity)
	if err != nil {
		return PerformanceReport{}, err
	}
	report.MaxDrawdown = dd

	return report, nil
}

// annualize compounds a total return observed over n trading days to a
// yearly figure.
func annualize(totalReturn float64, days int) float64 {
	if days == 0 {
		return 0
	}
	years := float64(days) / TradingDaysPerYear
	return math.Pow(1+totalReturn, 1/years) - 1
}

// sortino is excess return over downside deviation; 0 when there is no
// downside in the sample.
func sortino(dailyReturns []float64, annualReturn, riskFreeRate float64) float64 {
	var sumSq float64
	count := 0
	for _, r := range dailyReturns {
		if r < 0 {
			sumSq += r * r
			count++
		}
	}
	if count == 0 {
		return 0
	}

	downside := math.Sqrt(sumSq/float64(count)) * math.Sqrt(TradingDaysPerYear)
	if downside == 0 {
		return 0
	}
	return (annualReturn - riskFreeRate) / downside
}
