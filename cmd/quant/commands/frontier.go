package commands

import (
	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/internal/charts"
	"github.com/felixzhu97/fintech-project/internal/portfolio"
)

var (
	frontierPoints    int
	frontierChartPath string
)

var frontierCmd = &cobra.Command{
	Use:   "frontier",
	Short: "Efficient frontier sweep",
	Long: `Run the target-return optimizer across equally spaced targets between
the lowest and highest single-asset expected return. Optionally render
the frontier as a PNG line chart.

Example:
  go run ./cmd/quant frontier --returns 0.08,0.12,0.15 \
    --cov "0.04,0.006,0.012;0.006,0.09,0.018;0.012,0.018,0.16" \
    --points 20 --seed 42 --chart frontier.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		returns, cov, cons, optCfg, err := portfolioInputs(cfg)
		if err != nil {
			return err
		}

		frontier, err := portfolio.EfficientFrontier(returns, cov, cons, optCfg, frontierPoints)
		if err != nil {
			return err
		}

		if frontierChartPath != "" {
			vols := make([]float64, len(frontier))
			rets := make([]float64, len(frontier))
			for i, p := range frontier {
				vols[i] = p.Volatility
				rets[i] = p.ExpectedReturn
			}

			img, err := charts.EfficientFrontier(vols, rets)
			if err != nil {
				return err
			}
			if err := writeFile(frontierChartPath, img); err != nil {
				return err
			}
			log.Infof("frontier chart written to %s", frontierChartPath)
		}

		return printJSON(frontier)
	},
}

func init() {
	rootCmd.AddCommand(frontierCmd)

	frontierCmd.Flags().StringVar(&pfReturns, "returns", "", "expected returns, comma-separated")
	frontierCmd.Flags().StringVar(&pfCov, "cov", "", "covariance matrix, rows semicolon-separated")
	frontierCmd.Flags().BoolVar(&pfLongOnly, "long-only", true, "forbid short positions")
	frontierCmd.Flags().Float64Var(&pfMinWeight, "min-weight", 0, "uniform lower weight bound")
	frontierCmd.Flags().Float64Var(&pfMaxWeight, "max-weight", 1, "uniform upper weight bound")
	frontierCmd.Flags().Int64Var(&pfSeed, "seed", 0, "RNG seed (0 = non-deterministic)")
	frontierCmd.Flags().Float64Var(&pfRiskFree, "risk-free", 0.02, "risk-free rate for Sharpe reporting")
	frontierCmd.Flags().IntVar(&frontierPoints, "points", 0, "number of frontier points (default 20)")
	frontierCmd.Flags().StringVar(&frontierChartPath, "chart", "", "write a frontier PNG to this path")
}
