package portfolio

import "github.com/felixzhu97/fintech-project/internal/quanterr"

// EfficientFrontier runs the target-return optimizer at numPortfolios equally
// spaced targets between the lowest and highest single-asset expected return.
// numPortfolios <= 0 selects the default of 20.
//
// Seeded configs stay reproducible: each frontier point derives its own seed
// from cfg.Seed so the points do not share one RNG stream position.
func EfficientFrontier(returns []float64, covariance [][]float64, constraints Constraints,
	cfg OptimizerConfig, numPortfolios int) ([]Result, error) {

	if err := quanterr.NotEmpty("returns", len(returns)); err != nil {
		return nil, err
	}
	if numPortfolios <= 0 {
		numPortfolios = DefaultFrontierPoints
	}

	minReturn, maxReturn := returns[0], returns[0]
	for _, r := range returns[1:] {
		if r < minReturn {
			minReturn = r
		}
		if r > maxReturn {
			maxReturn = r
		}
	}

	frontier := make([]Result, 0, numPortfolios)
	step := 0.0
	if numPortfolios > 1 {
		step = (maxReturn - minReturn) / float64(numPortfolios-1)
	}

	for i := 0; i < numPortfolios; i++ {
		target := minReturn + step*float64(i)

		pointCfg := cfg
		if cfg.Seed != 0 {
			pointCfg.Seed = cfg.Seed + int64(i)
		}

		point, err := TargetReturn(returns, covariance, constraints, pointCfg, target)
		if err != nil {
			return nil, err
		}
		frontier = append(frontier, point)
	}

	return frontier, nil
}
