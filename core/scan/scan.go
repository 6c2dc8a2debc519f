// Package scan finds cross-boundary occurrences of a split target: places
// where the end of one word and the start of the following word(s)
// reconstitute the target string.
package scan

import (
	"sort"
	"strings"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/pattern"
	"github.com/tanakhlab/mesologia/internal/logging"
)

// DefaultContextWindow is the number of tokens shown on each side of a
// matched boundary.
const DefaultContextWindow = 3

// progressInterval is how often scan progress is logged, in tokens.
const progressInterval = 50_000

// Options configure a scan.
type Options struct {
	// ContextWindow is the number of tokens captured on each side of the
	// match. Zero selects DefaultContextWindow; negative disables context.
	ContextWindow int

	// Quiet suppresses progress logging.
	Quiet bool
}

func (o Options) window() int {
	if o.ContextWindow == 0 {
		return DefaultContextWindow
	}
	if o.ContextWindow < 0 {
		return 0
	}
	return o.ContextWindow
}

// Instance is one detected boundary occurrence. Instances are never
// mutated after the scanner emits them.
type Instance struct {
	// Left is the position of the suffix-bearing token.
	Left int

	// Right holds the positions of the token(s) consumed by the prefix
	// match, in order. Usually one token; more when the prefix spans
	// multiple words.
	Right []int

	// Suffix and Prefix are the matched parts, normalized.
	Suffix string
	Prefix string

	// Ref locates the suffix-bearing token.
	Ref corpus.Ref

	// RightRef locates the first prefix token. It differs from Ref when
	// the boundary crosses a verse or book break.
	RightRef corpus.Ref

	// Genre is the canonical division of the left token's book.
	Genre corpus.Genre

	// Pointed is the pointed text of the matched words, left then right.
	Pointed string

	// Context is the surrounding pointed text window.
	Context string
}

// Scan walks the corpus once and returns every boundary occurrence of the
// spec, in corpus order. Scanning is deterministic: identical inputs
// yield identical instance sequences. The scan always advances one token
// at a time, so back-to-back qualifying boundaries each produce their own
// instance even when they share tokens.
func Scan(c *corpus.Corpus, spec pattern.Spec, opts Options) ([]Instance, error) {
	if spec.Suffix == "" || spec.Prefix == "" {
		return nil, errors.NewConfig("pattern", "suffix and prefix must both be non-empty")
	}

	tokens := c.Tokens()
	total := len(tokens)
	window := opts.window()

	var instances []Instance
	for i := 0; i < total-1; i++ {
		if !opts.Quiet && i > 0 && i%progressInterval == 0 {
			logging.ScanProgress(i, total)
		}

		if !strings.HasSuffix(tokens[i].Text, spec.Suffix) {
			continue
		}

		span := prefixSpan(tokens, i+1, spec.Prefix)
		if span == nil {
			continue
		}

		instances = append(instances, buildInstance(tokens, spec, i, span, window))
	}

	return instances, nil
}

// prefixSpan returns the positions of the tokens starting at `start` that
// the prefix consumes, or nil when the prefix does not match there. The
// walk is greedy: each token must either complete the remaining prefix or
// be wholly consumed by it.
func prefixSpan(tokens []corpus.Token, start int, prefix string) []int {
	remaining := prefix
	var span []int

	for idx := start; idx < len(tokens) && remaining != ""; idx++ {
		text := tokens[idx].Text
		if text == "" {
			return nil
		}

		if strings.HasPrefix(text, remaining) {
			span = append(span, idx)
			remaining = ""
			break
		}

		if strings.HasPrefix(remaining, text) {
			span = append(span, idx)
			remaining = remaining[len(text):]
			continue
		}

		return nil
	}

	if remaining != "" {
		return nil
	}
	return span
}

func buildInstance(tokens []corpus.Token, spec pattern.Spec, left int, span []int, window int) Instance {
	last := span[len(span)-1]

	var pointed strings.Builder
	pointed.WriteString(tokens[left].Pointed)
	for _, idx := range span {
		pointed.WriteString(" ")
		pointed.WriteString(tokens[idx].Pointed)
	}

	ctxStart := left - window
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := last + 1 + window
	if ctxEnd > len(tokens) {
		ctxEnd = len(tokens)
	}
	var ctx []string
	for _, tok := range tokens[ctxStart:ctxEnd] {
		if tok.Pointed != "" {
			ctx = append(ctx, tok.Pointed)
		}
	}

	right := make([]int, len(span))
	copy(right, span)

	return Instance{
		Left:     left,
		Right:    right,
		Suffix:   spec.Suffix,
		Prefix:   spec.Prefix,
		Ref:      tokens[left].Ref,
		RightRef: tokens[span[0]].Ref,
		Genre:    tokens[left].Genre,
		Pointed:  pointed.String(),
		Context:  strings.Join(ctx, " "),
	}
}

// SummarizeByBook returns instance counts keyed by the book of the
// suffix-bearing token.
func SummarizeByBook(instances []Instance) map[string]int {
	summary := make(map[string]int)
	for _, inst := range instances {
		summary[inst.Ref.Book]++
	}
	return summary
}

// BooksInOrder returns the summary's book names sorted alphabetically,
// for stable report output.
func BooksInOrder(summary map[string]int) []string {
	books := make([]string, 0, len(summary))
	for book := range summary {
		books = append(books, book)
	}
	sort.Strings(books)
	return books
}

// FilterBook returns the instances whose suffix-bearing token is in the
// named book.
func FilterBook(instances []Instance, book string) []Instance {
	var out []Instance
	for _, inst := range instances {
		if inst.Ref.Book == book {
			out = append(out, inst)
		}
	}
	return out
}

// FilterGenre returns the instances whose suffix-bearing token belongs to
// the given canonical division.
func FilterGenre(instances []Instance, genre corpus.Genre) []Instance {
	var out []Instance
	for _, inst := range instances {
		if inst.Genre == genre {
			out = append(out, inst)
		}
	}
	return out
}
