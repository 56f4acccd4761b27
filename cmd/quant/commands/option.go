package commands

import (
	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/internal/options"
)

var optionCmd = &cobra.Command{
	Use:   "option",
	Short: "Option pricing and sensitivities",
	Long: `Price European/American options and compute their Greeks.

Commands:
  price      Black-Scholes closed form
  binomial   Cox-Ross-Rubinstein lattice (European or American)
  greeks     analytic delta/gamma/vega/theta/rho
  implied-vol  bisection implied volatility from a market price`,
}

var (
	optSpot     float64
	optStrike   float64
	optExpiry   float64
	optRate     float64
	optVol      float64
	optType     string
	optSteps    int
	optAmerican bool
	optMarket   float64
)

func optionContract() options.Contract {
	return options.Contract{
		Spot:   optSpot,
		Strike: optStrike,
		Expiry: optExpiry,
		Rate:   optRate,
		Vol:    optVol,
		Type:   options.OptionType(optType),
	}
}

var optionPriceCmd = &cobra.Command{
	Use:   "price",
	Short: "Black-Scholes price",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := setup()
		if err != nil {
			return err
		}

		c := optionContract()
		price, err := options.Price(c)
		if err != nil {
			return err
		}

		log.WithFields(map[string]interface{}{
			"spot": c.Spot, "strike": c.Strike, "type": c.Type,
		}).Debug("priced option")

		return printJSON(map[string]interface{}{
			"contract": c,
			"price":    price,
		})
	},
}

var optionBinomialCmd = &cobra.Command{
	Use:   "binomial",
	Short: "CRR lattice price",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		steps := optSteps
		if steps == 0 {
			steps = cfg.Lattice.Steps
		}
		policy := options.EuropeanExercise
		if optAmerican {
			policy = options.AmericanExercise
		}

		c := optionContract()
		price, err := options.BinomialPrice(c, steps, policy)
		if err != nil {
			return err
		}

		log.Debugf("lattice priced with %d steps (american=%v)", steps, optAmerican)

		return printJSON(map[string]interface{}{
			"contract": c,
			"steps":    steps,
			"american": optAmerican,
			"price":    price,
		})
	},
}

var optionGreeksCmd = &cobra.Command{
	Use:   "greeks",
	Short: "Analytic Greeks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		c := optionContract()
		greeks, err := options.CalcGreeks(c)
		if err != nil {
			return err
		}

		return printJSON(map[string]interface{}{
			"contract": c,
			"greeks":   greeks,
		})
	},
}

var optionImpliedVolCmd = &cobra.Command{
	Use:   "implied-vol",
	Short: "Implied volatility by bisection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		c := optionContract()
		res, err := options.ImpliedVol(c, optMarket, options.ImpliedVolConfig{
			Tolerance:     cfg.Solver.Tolerance,
			MaxIterations: cfg.Solver.MaxIterations,
		})
		if err != nil {
			return err
		}

		if !res.Converged {
			log.Warn("implied volatility search did not converge; result is best-effort")
		}

		return printJSON(res)
	},
}

func init() {
	rootCmd.AddCommand(optionCmd)
	optionCmd.AddCommand(optionPriceCmd)
	optionCmd.AddCommand(optionBinomialCmd)
	optionCmd.AddCommand(optionGreeksCmd)
	optionCmd.AddCommand(optionImpliedVolCmd)

	optionCmd.PersistentFlags().Float64Var(&optSpot, "spot", 0, "underlying price")
	optionCmd.PersistentFlags().Float64Var(&optStrike, "strike", 0, "strike price")
	optionCmd.PersistentFlags().Float64Var(&optExpiry, "expiry", 0, "time to expiry in years")
	optionCmd.PersistentFlags().Float64Var(&optRate, "rate", 0, "risk-free rate")
	optionCmd.PersistentFlags().Float64Var(&optVol, "vol", 0, "annualized volatility")
	optionCmd.PersistentFlags().StringVar(&optType, "type", "call", "option type (call|put)")

	optionBinomialCmd.Flags().IntVar(&optSteps, "steps", 0, "lattice steps (default from config)")
	optionBinomialCmd.Flags().BoolVar(&optAmerican, "american", false, "allow early exercise")

	optionImpliedVolCmd.Flags().Float64Var(&optMarket, "market-price", 0, "observed option price")
}
