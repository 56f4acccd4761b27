package factors

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// Pivots below this magnitude mark the system as singular.
const singularPivotEps = 1e-10

// solveLinearSystem solves Ax = b in place by Gaussian elimination with
// partial pivoting: at each step the row with the largest absolute pivot is
// swapped to the top, then eliminated, followed by back-substitution.
// A near-singular pivot is ErrUndefined.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	for col := 0; col < n; col++ {
		// Partial pivoting.
		pivotRow := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivotRow][col]) {
				pivotRow = row
			}
		}
		if pivotRow != col {
			a[col], a[pivotRow] = a[pivotRow], a[col]
			b[col], b[pivotRow] = b[pivotRow], b[col]
		}

		if math.Abs(a[col][col]) < singularPivotEps {
			return nil, fmt.Errorf("%w: singular matrix (pivot %e at column %d)",
				quanterr.ErrUndefined, a[col][col], col)
		}

		// Eliminate below the pivot.
		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	// Back-substitution.
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for col := row + 1; col < n; col++ {
			sum -= a[row][col] * x[col]
		}
		x[row] = sum / a[row][row]
	}
	return x, nil
}
