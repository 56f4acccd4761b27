package risk

// =============================================================================
// Conventions
// =============================================================================

// VaR and CVaR express losses as positive numbers throughout the engine:
// VaR=0.05 means "up to a 5% loss at the stated confidence". Every caller
// relies on this sign convention.

// VaRResult bundles the quantile and tail-average loss measures for one
// confidence level.
type VaRResult struct {
	Confidence float64 `json:"confidence"` // e.g. 0.95, 0.99
	VaR        float64 `json:"var"`        // Value at Risk (loss, positive)
	CVaR       float64 `json:"cvar"`       // Conditional VaR / Expected Shortfall (loss, positive)
}

// PerformanceReport summarizes a realized return series.
type PerformanceReport struct {
	TotalReturn      float64 `json:"total_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"` // annualized
	Sharpe           float64 `json:"sharpe"`
	Sortino          float64 `json:"sortino"`
	MaxDrawdown      float64 `json:"max_drawdown"` // loss, positive
	MedianReturn     float64 `json:"median_return"` // daily
}

// TradingDaysPerYear is the annualization base for daily return series.
const TradingDaysPerYear = 252
