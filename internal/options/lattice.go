package options

import (
	"fmt"
	"math"

	"github.com/felixzhu97/fintech-project/internal/quanterr"
)

// =============================================================================
// Cox-Ross-Rubinstein binomial lattice
// =============================================================================

// ExercisePolicy selects when the holder may exercise.
type ExercisePolicy uint8

const (
	// EuropeanExercise allows exercise only at expiry.
	EuropeanExercise ExercisePolicy = iota
	// AmericanExercise allows exercise at every lattice node.
	AmericanExercise
)

// BinomialPrice values an option on an n-step CRR lattice:
//
//	u = e^{sigma sqrt(dt)},  d = 1/u
//	p = (e^{r dt} - d) / (u - d)
//
// Terminal payoffs are computed at the n+1 leaves, then backward-induced one
// level at a time under the risk-neutral measure. The American policy takes
// max(continuation, intrinsic) at every interior node; the European policy
// keeps the continuation value. Both exercise styles share this single
// recursion so they cannot drift apart. O(n^2) work, O(n) space.
func BinomialPrice(c Contract, steps int, policy ExercisePolicy) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	if steps <= 0 {
		return 0, fmt.Errorf("%w: steps must be positive, got %d",
			quanterr.ErrInvalidInput, steps)
	}

	dt := c.Expiry / float64(steps)
	u := math.Exp(c.Vol * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(c.Rate*dt) - d) / (u - d)
	discount := math.Exp(-c.Rate * dt)

	// Terminal payoffs at the n+1 leaves.
	values := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		spot := c.Spot * math.Pow(u, float64(i)) * math.Pow(d, float64(steps-i))
		values[i] = intrinsic(c, spot)
	}

	// Backward induction, level by level.
	for level := steps - 1; level >= 0; level-- {
		for i := 0; i <= level; i++ {
			continuation := discount * (p*values[i+1] + (1-p)*values[i])
			if policy == AmericanExercise {
				spot := c.Spot * math.Pow(u, float64(i)) * math.Pow(d, float64(level-i))
				values[i] = math.Max(continuation, intrinsic(c, spot))
			} else {
				values[i] = continuation
			}
		}
	}

	return values[0], nil
}

// EuropeanPrice prices a European option on the lattice with the default
// step count. Converges to the Black-Scholes closed form as steps grow.
func EuropeanPrice(c Contract) (float64, error) {
	return BinomialPrice(c, DefaultBinomialSteps, EuropeanExercise)
}

// AmericanPrice prices an American option on the lattice with the default
// step count.
func AmericanPrice(c Contract) (float64, error) {
	return BinomialPrice(c, DefaultBinomialSteps, AmericanExercise)
}

// intrinsic is the exercise payoff at the given spot.
func intrinsic(c Contract, spot float64) float64 {
	if c.Type == Call {
		return math.Max(spot-c.Strike, 0)
	}
	return math.Max(c.Strike-spot, 0)
}
