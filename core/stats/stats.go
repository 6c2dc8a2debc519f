// Package stats estimates how often a split target should occur across
// word boundaries by chance, and tests the observed count against that
// expectation.
//
// The null model treats adjacent words as independent draws: with N
// tokens, P(suffix) the share of tokens ending in the suffix and
// P(prefix) the share beginning with the prefix, the expected number of
// qualifying boundaries is λ = (N−1)·P(suffix)·P(prefix), and the
// observed count is compared to λ with a Poisson upper-tail test.
package stats

import (
	"math"
	"strings"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/pattern"
)

// DefaultThreshold is the default significance level.
const DefaultThreshold = 0.05

// Frequency holds corpus-wide boundary-letter statistics for one spec.
type Frequency struct {
	// N is the corpus token count.
	N int

	// SuffixCount is the number of tokens ending in the spec's suffix.
	SuffixCount int

	// PrefixCount is the number of tokens beginning with the spec's
	// prefix. This is a single-word leading match: multi-word prefix
	// spans are a scanner refinement and are not folded into the base
	// probability.
	PrefixCount int

	// PSuffix and PPrefix are the empirical probabilities.
	PSuffix float64
	PPrefix float64

	// Lambda is the expected number of qualifying adjacent boundaries,
	// (N−1)·PSuffix·PPrefix.
	Lambda float64
}

// EstimateFrequencies computes boundary-letter statistics for the spec
// over the whole corpus. Returns a DataError for an empty corpus.
func EstimateFrequencies(c *corpus.Corpus, spec pattern.Spec) (Frequency, error) {
	if spec.Suffix == "" || spec.Prefix == "" {
		return Frequency{}, errors.NewConfig("pattern", "suffix and prefix must both be non-empty")
	}

	tokens := c.Tokens()
	n := len(tokens)
	if n == 0 {
		return Frequency{}, errors.NewData("", "cannot estimate frequencies over zero tokens")
	}

	var suffixCount, prefixCount int
	for _, tok := range tokens {
		if strings.HasSuffix(tok.Text, spec.Suffix) {
			suffixCount++
		}
		if strings.HasPrefix(tok.Text, spec.Prefix) {
			prefixCount++
		}
	}

	pSuffix := float64(suffixCount) / float64(n)
	pPrefix := float64(prefixCount) / float64(n)

	return Frequency{
		N:           n,
		SuffixCount: suffixCount,
		PrefixCount: prefixCount,
		PSuffix:     pSuffix,
		PPrefix:     pPrefix,
		Lambda:      float64(n-1) * pSuffix * pPrefix,
	}, nil
}

// Result is the significance verdict for one spec.
type Result struct {
	// Spec is the evaluated pattern.
	Spec pattern.Spec

	// Frequency holds the corpus statistics behind Lambda.
	Frequency Frequency

	// Observed is the boundary occurrence count from the scanner.
	Observed int

	// Ratio is Observed/Lambda; +Inf when Lambda is zero.
	Ratio float64

	// PValue is the Poisson upper-tail probability P(X ≥ Observed | λ).
	// NaN when Undefined.
	PValue float64

	// Threshold is the significance level the flag was evaluated at.
	Threshold float64

	// Significant reports PValue < Threshold. Always false when
	// Undefined; consult PValue, never this flag alone.
	Significant bool

	// Undefined marks a degenerate result (λ = 0): the ratio and p-value
	// carry no information because the null model predicts nothing.
	Undefined bool

	// Err carries the non-fatal arithmetic condition for degenerate
	// results (ErrZeroExpectation), nil otherwise.
	Err error
}

// Test compares an observed count against the expectation in freq.
// A zero λ yields an Undefined result rather than an error: the spec's
// suffix or prefix never occurs, so the batch can continue.
func Test(spec pattern.Spec, freq Frequency, observed int, threshold float64) Result {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	result := Result{
		Spec:      spec,
		Frequency: freq,
		Observed:  observed,
		Threshold: threshold,
	}

	if freq.Lambda == 0 {
		result.Ratio = math.Inf(1)
		result.PValue = math.NaN()
		result.Undefined = true
		result.Err = errors.Wrapf(errors.ErrZeroExpectation, "spec %s", spec.ID())
		return result
	}

	result.Ratio = float64(observed) / freq.Lambda
	result.PValue = PoissonTail(observed, freq.Lambda)
	result.Significant = result.PValue < threshold
	return result
}
