package factors

// =============================================================================
// CAPM / Fama-French
// =============================================================================
//
// All factor models below are thin callers: they assemble the factor series
// and delegate to MultipleRegression. There is exactly one solver.

// CAPM regresses asset excess returns on market excess returns.
// riskFreeRate is the per-period risk-free rate subtracted from both series.
func CAPM(assetReturns, marketReturns []float64, riskFreeRate float64) (CAPMResult, error) {
	asset := excess(assetReturns, riskFreeRate)
	market := excess(marketReturns, riskFreeRate)

	fit, err := MultipleRegression([][]float64{market}, asset)
	if err != nil {
		return CAPMResult{}, err
	}

	return CAPMResult{
		Beta:     fit.Coefficients[0],
		Alpha:    fit.Intercept,
		RSquared: fit.RSquared,
	}, nil
}

// FamaFrench3 fits the three-factor model: asset excess returns on market
// excess, SMB and HML factor returns.
func FamaFrench3(assetReturns, marketExcess, smb, hml []float64, riskFreeRate float64) (FamaFrenchResult, error) {
	fit, err := MultipleRegression(
		[][]float64{marketExcess, smb, hml},
		excess(assetReturns, riskFreeRate),
	)
	if err != nil {
		return FamaFrenchResult{}, err
	}

	return FamaFrenchResult{
		Alpha:            fit.Intercept,
		MarketBeta:       fit.Coefficients[0],
		SizeBeta:         fit.Coefficients[1],
		ValueBeta:        fit.Coefficients[2],
		RSquared:         fit.RSquared,
		AdjustedRSquared: fit.AdjustedRSquared,
	}, nil
}

// FamaFrench5 fits the five-factor model, adding the RMW (profitability) and
// CMA (investment) factor returns.
func FamaFrench5(assetReturns, marketExcess, smb, hml, rmw, cma []float64, riskFreeRate float64) (FamaFrenchResult, error) {
	fit, err := MultipleRegression(
		[][]float64{marketExcess, smb, hml, rmw, cma},
		excess(assetReturns, riskFreeRate),
	)
	if err != nil {
		return FamaFrenchResult{}, err
	}

	return FamaFrenchResult{
		Alpha:             fit.Intercept,
		MarketBeta:        fit.Coefficients[0],
		SizeBeta:          fit.Coefficients[1],
		ValueBeta:         fit.Coefficients[2],
		ProfitabilityBeta: fit.Coefficients[3],
		InvestmentBeta:    fit.Coefficients[4],
		RSquared:          fit.RSquared,
		AdjustedRSquared:  fit.AdjustedRSquared,
	}, nil
}

// excess subtracts a constant per-period risk-free rate from a return
// series.
func excess(returns []float64, riskFreeRate float64) []float64 {
	out := make([]float64, len(returns))
	for i, r := range returns {
		out[i] = r - riskFreeRate
	}
	return out
}
