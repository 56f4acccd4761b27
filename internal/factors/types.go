package factors

// =============================================================================
// Regression Types
// =============================================================================

// RegressionResult is a fit summary, not an updatable model object.
// Simple regression fills StandardError; multiple regression fills
// AdjustedRSquared.
type RegressionResult struct {
	Intercept        float64   `json:"intercept"`
	Coefficients     []float64 `json:"coefficients"`
	RSquared         float64   `json:"r_squared"`
	AdjustedRSquared float64   `json:"adjusted_r_squared,omitempty"`
	StandardError    float64   `json:"standard_error,omitempty"`
}

// CAPMResult summarizes a CAPM fit of asset excess returns on market excess
// returns.
type CAPMResult struct {
	Beta     float64 `json:"beta"`
	Alpha    float64 `json:"alpha"` // annual-period intercept, Jensen's alpha
	RSquared float64 `json:"r_squared"`
}

// FamaFrenchResult summarizes a Fama-French factor attribution. The
// profitability and investment loadings are populated by the five-factor
// model only.
type FamaFrenchResult struct {
	Alpha             float64 `json:"alpha"`
	MarketBeta        float64 `json:"market_beta"`
	SizeBeta          float64 `json:"size_beta"`  // SMB loading
	ValueBeta         float64 `json:"value_beta"` // HML loading
	ProfitabilityBeta float64 `json:"profitability_beta,omitempty"` // RMW loading
	InvestmentBeta    float64 `json:"investment_beta,omitempty"`    // CMA loading
	RSquared          float64 `json:"r_squared"`
	AdjustedRSquared  float64 `json:"adjusted_r_squared"`
}
