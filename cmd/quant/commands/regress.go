package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/internal/factors"
)

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Statistical factor models",
	Long: `Covariance, OLS regression and factor attributions.

Commands:
  simple    closed-form simple least squares
  multiple  multiple regression via normal equations
  capm      CAPM beta/alpha against a market series
  ff3       Fama-French three-factor attribution
  ff5       Fama-French five-factor attribution`,
}

var (
	regX        string
	regY        string
	regFactors  string
	regAsset    string
	regMarket   string
	regSMB      string
	regHML      string
	regRMW      string
	regCMA      string
	regRiskFree float64
)

var regressSimpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Simple linear regression",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		x, err := parseSeries(regX)
		if err != nil {
			return err
		}
		y, err := parseSeries(regY)
		if err != nil {
			return err
		}

		fit, err := factors.SimpleRegression(x, y)
		if err != nil {
			return err
		}
		return printJSON(fit)
	},
}

var regressMultipleCmd = &cobra.Command{
	Use:   "multiple",
	Short: "Multiple linear regression",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		series, err := parseMatrix(regFactors)
		if err != nil {
			return err
		}
		y, err := parseSeries(regY)
		if err != nil {
			return err
		}

		fit, err := factors.MultipleRegression(series, y)
		if err != nil {
			return err
		}
		return printJSON(fit)
	},
}

var regressCAPMCmd = &cobra.Command{
	Use:   "capm",
	Short: "CAPM beta and alpha",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		asset, err := parseSeries(regAsset)
		if err != nil {
			return err
		}
		market, err := parseSeries(regMarket)
		if err != nil {
			return err
		}

		res, err := factors.CAPM(asset, market, regRiskFree)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var regressFF3Cmd = &cobra.Command{
	Use:   "ff3",
	Short: "Fama-French three-factor model",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		series, err := parseNamedSeries(map[string]string{
			"asset": regAsset, "market": regMarket, "smb": regSMB, "hml": regHML,
		})
		if err != nil {
			return err
		}

		res, err := factors.FamaFrench3(series["asset"], series["market"],
			series["smb"], series["hml"], regRiskFree)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var regressFF5Cmd = &cobra.Command{
	Use:   "ff5",
	Short: "Fama-French five-factor model",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		series, err := parseNamedSeries(map[string]string{
			"asset": regAsset, "market": regMarket, "smb": regSMB,
			"hml": regHML, "rmw": regRMW, "cma": regCMA,
		})
		if err != nil {
			return err
		}

		res, err := factors.FamaFrench5(series["asset"], series["market"],
			series["smb"], series["hml"], series["rmw"], series["cma"], regRiskFree)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

// parseNamedSeries parses multiple flag values, reporting which one failed.
func parseNamedSeries(raw map[string]string) (map[string][]float64, error) {
	parsed := make(map[string][]float64, len(raw))
	for name, value := range raw {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("--%s is required", name)
		}
		series, err := parseSeries(value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		parsed[name] = series
	}
	return parsed, nil
}

func init() {
	rootCmd.AddCommand(regressCmd)
	regressCmd.AddCommand(regressSimpleCmd)
	regressCmd.AddCommand(regressMultipleCmd)
	regressCmd.AddCommand(regressCAPMCmd)
	regressCmd.AddCommand(regressFF3Cmd)
	regressCmd.AddCommand(regressFF5Cmd)

	regressSimpleCmd.Flags().StringVar(&regX, "x", "", "regressor series")
	regressSimpleCmd.Flags().StringVar(&regY, "y", "", "response series")

	regressMultipleCmd.Flags().StringVar(&regFactors, "factors", "", "factor series, semicolon-separated")
	regressMultipleCmd.Flags().StringVar(&regY, "y", "", "response series")

	regressCmd.PersistentFlags().Float64Var(&regRiskFree, "risk-free", 0, "per-period risk-free rate")
	regressCAPMCmd.Flags().StringVar(&regAsset, "asset", "", "asset return series")
	regressCAPMCmd.Flags().StringVar(&regMarket, "market", "", "market return series")

	for _, c := range []*cobra.Command{regressFF3Cmd, regressFF5Cmd} {
		c.Flags().StringVar(&regAsset, "asset", "", "asset return series")
		c.Flags().StringVar(&regMarket, "market", "", "market excess return series")
		c.Flags().StringVar(&regSMB, "smb", "", "SMB factor series")
		c.Flags().StringVar(&regHML, "hml", "", "HML factor series")
	}
	regressFF5Cmd.Flags().StringVar(&regRMW, "rmw", "", "RMW factor series")
	regressFF5Cmd.Flags().StringVar(&regCMA, "cma", "", "CMA factor series")
}
