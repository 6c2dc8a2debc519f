// Package hebrew normalizes Hebrew word text for boundary matching.
//
// Normalization reduces pointed Tiberian text to bare consonants:
// vowel points and cantillation marks are stripped, the maqaf joiner is
// removed, and final letter forms are folded to their base letters
// (configurable). The result is suitable for exact suffix/prefix
// comparison between words.
//
// All functions are pure, deterministic, and idempotent; a Normalizer is
// safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Input outside the Hebrew block passes through unchanged; the
//     normalizer never rejects input.
//   - Ketiv/qere variants are not resolved; the corpus provider decides
//     which reading to supply.
package hebrew

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maqaf is the Hebrew hyphen joining words in pointed text. It is removed
// so that joined words compare the same as standalone ones.
const maqaf = '־'

// finalFormReplacer folds the five Hebrew final letter forms to their
// base letters.
var finalFormReplacer = strings.NewReplacer(
	"ך", "כ",
	"ם", "מ",
	"ן", "נ",
	"ף", "פ",
	"ץ", "צ",
)

// Options control normalization behavior.
type Options struct {
	// KeepFinalForms leaves final letters (ך ם ן ף ץ) as written instead
	// of folding them to their base forms. The same Options must be used
	// for both corpus tokens and pattern text, or boundary matches will
	// not line up.
	KeepFinalForms bool
}

// Normalizer applies a fixed set of Options to word text.
type Normalizer struct {
	opts Options
}

// New creates a Normalizer with the given options.
func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Default returns a Normalizer with default options (final forms folded).
func Default() *Normalizer {
	return New(Options{})
}

// Options returns the options this Normalizer was created with.
func (n *Normalizer) Options() Options {
	return n.opts
}

// Normalize strips vowel points, cantillation marks, and the maqaf from
// text and recomposes it, folding final letter forms unless
// KeepFinalForms is set. Non-Hebrew input passes through unchanged.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) || r == maqaf {
			continue
		}
		b.WriteRune(r)
	}

	composed := norm.NFC.String(b.String())
	if n.opts.KeepFinalForms {
		return composed
	}
	return finalFormReplacer.Replace(composed)
}

// Normalize applies default normalization (final forms folded).
func Normalize(text string) string {
	return Default().Normalize(text)
}
