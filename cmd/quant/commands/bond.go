package commands

import (
	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/internal/charts"
	"github.com/felixzhu97/fintech-project/internal/fixedincome"
)

var bondCmd = &cobra.Command{
	Use:   "bond",
	Short: "Fixed-income analytics",
	Long: `Bond present value, yield to maturity, duration and convexity.

Commands:
  price      present value at a given yield
  ytm        Newton-Raphson yield to maturity from a market price
  duration   Macaulay, modified and effective duration
  convexity  analytic and effective convexity, Taylor price-change estimate
  curve      price the bond across a yield grid (optionally render a chart)`,
}

var (
	bondFace      float64
	bondCoupon    float64
	bondYears     float64
	bondFrequency int
	bondYield     float64
	bondMarket    float64
	bondShiftBP   float64
	bondChartPath string
)

func bondFromFlags() fixedincome.Bond {
	return fixedincome.Bond{
		FaceValue:       bondFace,
		CouponRate:      bondCoupon,
		YearsToMaturity: bondYears,
		Frequency:       bondFrequency,
	}
}

var bondPriceCmd = &cobra.Command{
	Use:   "price",
	Short: "Present value at a yield",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		b := bondFromFlags()
		price, err := fixedincome.Price(b, bondYield)
		if err != nil {
			return err
		}

		return printJSON(map[string]interface{}{
			"bond":  b,
			"yield": bondYield,
			"price": price,
		})
	},
}

var bondYTMCmd = &cobra.Command{
	Use:   "ytm",
	Short: "Yield to maturity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		b := bondFromFlags()
		res, err := fixedincome.YieldToMaturity(b, bondMarket, fixedincome.YTMConfig{
			Tolerance:     cfg.Solver.Tolerance,
			MaxIterations: cfg.Solver.MaxIterations,
		})
		if err != nil {
			return err
		}

		if !res.Converged {
			log.Warn("YTM search did not converge; result is best-effort")
		}

		return printJSON(res)
	},
}

var bondDurationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Duration risk measures",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		b := bondFromFlags()
		mac, err := fixedincome.MacaulayDuration(b, bondYield)
		if err != nil {
			return err
		}
		mod, err := fixedincome.ModifiedDuration(b, bondYield)
		if err != nil {
			return err
		}
		eff, err := fixedincome.EffectiveDuration(b, bondYield, bondShiftBP/10000)
		if err != nil {
			return err
		}

		return printJSON(map[string]interface{}{
			"macaulay":  mac,
			"modified":  mod,
			"effective": eff,
		})
	},
}

var bondConvexityCmd = &cobra.Command{
	Use:   "convexity",
	Short: "Convexity risk measures",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(); err != nil {
			return err
		}

		b := bondFromFlags()
		conv, err := fixedincome.Convexity(b, bondYield)
		if err != nil {
			return err
		}
		eff, err := fixedincome.EffectiveConvexity(b, bondYield, bondShiftBP/10000)
		if err != nil {
			return err
		}
		change, err := fixedincome.EstimatePriceChange(b, bondYield, bondShiftBP/10000)
		if err != nil {
			return err
		}

		return printJSON(map[string]interface{}{
			"analytic":               conv,
			"effective":              eff,
			"estimated_price_change": change,
			"yield_shift":            bondShiftBP / 10000,
		})
	},
}

var bondCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Price across a yield grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := setup()
		if err != nil {
			return err
		}

		b := bondFromFlags()

		// 0.5% .. 12% in 0.25% steps
		var yields, prices []float64
		for y := 0.005; y <= 0.12; y += 0.0025 {
			price, err := fixedincome.Price(b, y)
			if err != nil {
				return err
			}
			yields = append(yields, y)
			prices = append(prices, price)
		}

		if bondChartPath != "" {
			img, err := charts.PriceYield(yields, prices)
			if err != nil {
				return err
			}
			if err := writeFile(bondChartPath, img); err != nil {
				return err
			}
			log.Infof("price-yield chart written to %s", bondChartPath)
		}

		return printJSON(map[string]interface{}{
			"yields": yields,
			"prices": prices,
		})
	},
}

func init() {
	rootCmd.AddCommand(bondCmd)
	bondCmd.AddCommand(bondPriceCmd)
	bondCmd.AddCommand(bondYTMCmd)
	bondCmd.AddCommand(bondDurationCmd)
	bondCmd.AddCommand(bondConvexityCmd)
	bondCmd.AddCommand(bondCurveCmd)

	bondCmd.PersistentFlags().Float64Var(&bondFace, "face", 1000, "face value")
	bondCmd.PersistentFlags().Float64Var(&bondCoupon, "coupon", 0, "annual coupon rate (0.05 = 5%)")
	bondCmd.PersistentFlags().Float64Var(&bondYears, "years", 0, "years to maturity")
	bondCmd.PersistentFlags().IntVar(&bondFrequency, "frequency", 2, "coupon payments per year")
	bondCmd.PersistentFlags().Float64Var(&bondYield, "yield", 0, "annual yield")

	bondYTMCmd.Flags().Float64Var(&bondMarket, "market-price", 0, "observed bond price")
	bondDurationCmd.Flags().Float64Var(&bondShiftBP, "shift-bp", 100, "yield shift in basis points")
	bondConvexityCmd.Flags().Float64Var(&bondShiftBP, "shift-bp", 100, "yield shift in basis points")
	bondCurveCmd.Flags().StringVar(&bondChartPath, "chart", "", "write a price-yield PNG to this path")
}
