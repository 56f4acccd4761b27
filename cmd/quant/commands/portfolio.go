package commands

import (
	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/internal/portfolio"
	"github.com/felixzhu97/fintech-project/pkg/config"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Mean-variance portfolio optimization",
	Long: `Optimize portfolio weights by stochastic local search.

The optimizers are best-effort heuristics; pass --seed for reproducible
runs. Weights always sum to 1 within a 0.01 tolerance and satisfy the
supplied bounds.

Commands:
  max-sharpe     maximize the Sharpe ratio
  min-variance   minimize portfolio variance
  target-return  minimize variance near a target expected return
  target-risk    maximize return near a target volatility`,
}

var (
	pfReturns   string
	pfCov       string
	pfLongOnly  bool
	pfMinWeight float64
	pfMaxWeight float64
	pfSeed      int64
	pfRiskFree  float64
	pfTarget    float64
)

func portfolioInputs(cfg *config.Config) ([]float64, [][]float64, portfolio.Constraints, portfolio.OptimizerConfig, error) {
	returns, err := parseSeries(pfReturns)
	if err != nil {
		return nil, nil, portfolio.Constraints{}, portfolio.OptimizerConfig{}, err
	}
	cov, err := parseMatrix(pfCov)
	if err != nil {
		return nil, nil, portfolio.Constraints{}, portfolio.OptimizerConfig{}, err
	}

	cons := portfolio.Constraints{
		LongOnly:  pfLongOnly,
		MinWeight: pfMinWeight,
		MaxWeight: pfMaxWeight,
	}

	optCfg := portfolio.OptimizerConfig{
		Iterations:   cfg.Optimizer.Iterations,
		LearningRate: cfg.Optimizer.LearningRate,
		RiskFreeRate: pfRiskFree,
		Seed:         pfSeed,
	}
	if pfSeed == 0 {
		optCfg.Seed = cfg.Optimizer.Seed
	}

	return returns, cov, cons, optCfg, nil
}

func runOptimizer(run func([]float64, [][]float64, portfolio.Constraints, portfolio.OptimizerConfig) (portfolio.Result, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		returns, cov, cons, optCfg, err := portfolioInputs(cfg)
		if err != nil {
			return err
		}

		res, err := run(returns, cov, cons, optCfg)
		if err != nil {
			return err
		}

		log.WithFields(map[string]interface{}{
			"assets":     len(returns),
			"iterations": optCfg.Iterations,
			"seed":       optCfg.Seed,
		}).Debug("optimizer finished")

		return printJSON(res)
	}
}

var portfolioMaxSharpeCmd = &cobra.Command{
	Use:   "max-sharpe",
	Short: "Maximize the Sharpe ratio",
	RunE:  runOptimizer(portfolio.MaximizeSharpe),
}

var portfolioMinVarianceCmd = &cobra.Command{
	Use:   "min-variance",
	Short: "Minimize portfolio variance",
	RunE:  runOptimizer(portfolio.MinimizeVariance),
}

var portfolioTargetReturnCmd = &cobra.Command{
	Use:   "target-return",
	Short: "Minimize variance near a target return",
	RunE: runOptimizer(func(r []float64, c [][]float64, cons portfolio.Constraints, cfg portfolio.OptimizerConfig) (portfolio.Result, error) {
		return portfolio.TargetReturn(r, c, cons, cfg, pfTarget)
	}),
}

var portfolioTargetRiskCmd = &cobra.Command{
	Use:   "target-risk",
	Short: "Maximize return near a target volatility",
	RunE: runOptimizer(func(r []float64, c [][]float64, cons portfolio.Constraints, cfg portfolio.OptimizerConfig) (portfolio.Result, error) {
		return portfolio.TargetRisk(r, c, cons, cfg, pfTarget)
	}),
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.AddCommand(portfolioMaxSharpeCmd)
	portfolioCmd.AddCommand(portfolioMinVarianceCmd)
	portfolioCmd.AddCommand(portfolioTargetReturnCmd)
	portfolioCmd.AddCommand(portfolioTargetRiskCmd)

	portfolioCmd.PersistentFlags().StringVar(&pfReturns, "returns", "", "expected returns, comma-separated")
	portfolioCmd.PersistentFlags().StringVar(&pfCov, "cov", "", "covariance matrix, rows semicolon-separated")
	portfolioCmd.PersistentFlags().BoolVar(&pfLongOnly, "long-only", true, "forbid short positions")
	portfolioCmd.PersistentFlags().Float64Var(&pfMinWeight, "min-weight", 0, "uniform lower weight bound")
	portfolioCmd.PersistentFlags().Float64Var(&pfMaxWeight, "max-weight", 1, "uniform upper weight bound")
	portfolioCmd.PersistentFlags().Int64Var(&pfSeed, "seed", 0, "RNG seed (0 = non-deterministic)")
	portfolioCmd.PersistentFlags().Float64Var(&pfRiskFree, "risk-free", 0.02, "risk-free rate for the Sharpe objective")

	portfolioTargetReturnCmd.Flags().Float64Var(&pfTarget, "target", 0, "target expected return")
	portfolioTargetRiskCmd.Flags().Float64Var(&pfTarget, "target", 0, "target volatility")
}
