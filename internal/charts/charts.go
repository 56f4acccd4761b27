// Package charts renders engine results to PNG line charts for CLI output.
// Rendering is caller-side presentation; the calculation packages never
// depend on it.
package charts

import (
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// EfficientFrontier renders expected return against volatility for a sweep
// of frontier portfolios. Points must be parallel slices ordered by target
// return.
func EfficientFrontier(volatilities, returns []float64) ([]byte, error) {
	if err := quanterr.NotEmpty("volatilities", len(volatilities)); err != nil {
		return nil, err
	}
	if err := quanterr.SameLen("volatilities", len(volatilities), "returns", len(returns)); err != nil {
		return nil, err
	}

	labels := make([]string, len(volatilities))
	for i, v := range volatilities {
		labels[i] = fmt.Sprintf("%.2f%%", v*100)
	}

	percent := make([]float64, len(returns))
	for i, r := range returns {
		percent[i] = r * 100
	}

	return render(percent, labels, "Efficient Frontier", 10)
}

// PriceYield renders a bond price curve against a yield grid.
func PriceYield(yields, prices []float64) ([]byte, error) {
	if err := quanterr.NotEmpty("yields", len(yields)); err != nil {
		return nil, err
	}
	if err := quanterr.SameLen("yields", len(yields), "prices", len(prices)); err != nil {
		return nil, err
	}

	labels := make([]string, len(yields))
	for i, y := range yields {
		labels[i] = fmt.Sprintf("%.2f%%", y*100)
	}

	return render(prices, labels, "Price vs Yield", 8)
}

// render draws one padded line series over the given x labels.
func render(values []float64, labels []string, title string, splits int) ([]byte, error) {
	yMin, yMax := values[0], values[0]
	for _, v := range values {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	yMin -= pad
	yMax += pad

	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: splits,
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
