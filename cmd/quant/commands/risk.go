package commands

import (
	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/internal/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Risk and performance metrics",
	Long: `Value-at-risk, drawdown and equity-curve analytics.

Commands:
  var         historical VaR and CVaR from a return series
  parametric  gaussian VaR from mean and volatility
  drawdown    maximum drawdown of a price series
  report      full performance report from daily returns`,
}

var (
	riskReturns    string
	riskPrices     string
	riskConfidence float64
	riskMean       float64
	riskStdDev     float64
	riskRiskFree   float64
)

var riskVaRCmd = &cobra.Command{
	Use:   "var",
	Short: "Historical value-at-risk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		returns, err := parseSeries(riskReturns)
		if err != nil {
			return err
		}

		res, err := risk.HistoricalVaR(returns, riskConfidence)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var riskParametricCmd = &cobra.Command{
	Use:   "parametric",
	Short: "Parametric (gaussian) value-at-risk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		res, err := risk.ParametricVaR(riskMean, riskStdDev, riskConfidence)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var riskDrawdownCmd = &cobra.Command{
	Use:   "drawdown",
	Short: "Maximum drawdown of a price series",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		prices, err := parseSeries(riskPrices)
		if err != nil {
			return err
		}

		mdd, err := risk.MaxDrawdown(prices)
		if err != nil {
			return err
		}
		return printJSON(map[string]float64{"max_drawdown": mdd})
	},
}

var riskReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Performance report from daily returns",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		returns, err := parseSeries(riskReturns)
		if err != nil {
			return err
		}

		report, err := risk.Analyze(returns, riskRiskFree)
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(riskCmd)
	riskCmd.AddCommand(riskVaRCmd)
	riskCmd.AddCommand(riskParametricCmd)
	riskCmd.AddCommand(riskDrawdownCmd)
	riskCmd.AddCommand(riskReportCmd)

	riskVaRCmd.Flags().StringVar(&riskReturns, "returns", "", "return series")
	riskVaRCmd.Flags().Float64Var(&riskConfidence, "confidence", 0.95, "confidence level")

	riskParametricCmd.Flags().Float64Var(&riskMean, "mean", 0, "mean of the return distribution")
	riskParametricCmd.Flags().Float64Var(&riskStdDev, "stddev", 0, "standard deviation of the return distribution")
	riskParametricCmd.Flags().Float64Var(&riskConfidence, "confidence", 0.95, "confidence level")

	riskDrawdownCmd.Flags().StringVar(&riskPrices, "prices", "", "price or equity-curve series")

	riskReportCmd.Flags().StringVar(&riskReturns, "returns", "", "daily return series")
	riskReportCmd.Flags().Float64Var(&riskRiskFree, "risk-free", 0, "annual risk-free rate")
}
