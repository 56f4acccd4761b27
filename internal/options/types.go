package options

// =============================================================================
// Option Types
// =============================================================================

// OptionType distinguishes calls from puts.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Valid reports whether t is one of the two supported option types.
func (t OptionType) Valid() bool {
	return t == Call || t == Put
}

// Contract bundles the five Black-Scholes inputs.
// Spot, Strike, Expiry and Vol must be strictly positive; Rate may be any
// real (negative risk-free rates are accepted).
type Contract struct {
	Spot   float64    `json:"spot"`   // current underlying price S
	Strike float64    `json:"strike"` // strike price K
	Expiry float64    `json:"expiry"` // time to expiry T, in years
	Rate   float64    `json:"rate"`   // continuously compounded risk-free rate r
	Vol    float64    `json:"vol"`    // annualized volatility sigma
	Type   OptionType `json:"type"`
}

// Greeks holds the analytic Black-Scholes sensitivities.
// Vega and Rho are per 1% move, Theta is per calendar day.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// ImpliedVolResult is the outcome of the bisection search.
// When the search exhausts its iterations, Vol holds the last midpoint and
// Converged is false; callers must treat such a result as best-effort.
type ImpliedVolResult struct {
	Vol        float64 `json:"vol"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// ImpliedVolConfig tunes the bisection search.
type ImpliedVolConfig struct {
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"max_iterations"`
}

// DefaultImpliedVolConfig returns the standard search settings.
func DefaultImpliedVolConfig() ImpliedVolConfig {
	return ImpliedVolConfig{
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// DefaultBinomialSteps is the default lattice depth for the CRR tree.
const DefaultBinomialSteps = 100
