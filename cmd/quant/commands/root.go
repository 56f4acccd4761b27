package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixzhu97/fintech-project/pkg/config"
	"github.com/felixzhu97/fintech-project/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quant",
	Short: "Quantitative valuation and optimization engine",
	Long: `Quant Engine CLI

Prices derivatives, values bonds, optimizes portfolios and fits factor
models. Inputs are plain numbers and comma-separated series; results are
printed as JSON.

Examples:
  go run ./cmd/quant option price --spot 100 --strike 100 --expiry 1 --rate 0.05 --vol 0.2 --type call
  go run ./cmd/quant bond ytm --face 1000 --coupon 0.05 --years 10 --frequency 2 --market-price 950
  go run ./cmd/quant portfolio max-sharpe --returns 0.08,0.12,0.15 --cov "0.04,0.006,0.012;0.006,0.09,0.018;0.012,0.018,0.16"
  go run ./cmd/quant frontier --returns 0.08,0.12 --cov "0.04,0.006;0.006,0.09" --chart frontier.png`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads config and builds the logger for one command run.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(cfg), nil
}

// printJSON writes a result record to stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseSeries parses a comma-separated float list: "0.08,0.12,0.15".
func parseSeries(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty series")
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseMatrix parses semicolon-separated rows of comma-separated floats:
// "0.04,0.006;0.006,0.09".
func parseMatrix(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty matrix")
	}

	rows := strings.Split(s, ";")
	matrix := make([][]float64, 0, len(rows))
	for _, r := range rows {
		row, err := parseSeries(r)
		if err != nil {
			return nil, err
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}

// writeFile writes chart bytes next to the caller.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
