// Package pattern defines the suffix/prefix split of a boundary search
// target. A Spec is validated once at construction; downstream components
// may assume both parts are non-empty and already normalized.
package pattern

import (
	"fmt"

	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/hebrew"
)

// Spec is a validated search target split into the part expected at the
// end of one word and the part expected at the start of the next.
type Spec struct {
	// Label identifies the spec in reports. Defaults to Target.
	Label string

	// Target is the normalized full target string.
	Target string

	// Suffix is the leading part of Target, matched against the end of
	// the first word of a boundary pair.
	Suffix string

	// Prefix is the trailing part of Target, matched against the start
	// of the following word(s).
	Prefix string
}

// ID returns the identifier used to key results: the label if set,
// otherwise the target itself.
func (s Spec) ID() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Target
}

// String formats the spec as "suffix ... prefix".
func (s Spec) String() string {
	return fmt.Sprintf("%s … %s", s.Suffix, s.Prefix)
}

// New builds a Spec from a target word and a split index. The split index
// counts letters from the left of the normalized target; index 2 on יהוה
// yields suffix יה and prefix וה. A split of 0 selects the word midpoint,
// clamped to keep both parts non-empty.
func New(label, target string, split int, n *hebrew.Normalizer) (Spec, error) {
	if n == nil {
		n = hebrew.Default()
	}
	normalized := []rune(n.Normalize(target))
	length := len(normalized)

	if length < 2 {
		return Spec{}, errors.NewConfig("target",
			fmt.Sprintf("normalized target %q must contain at least two letters", target))
	}

	if split == 0 {
		split = length / 2
		if split < 1 {
			split = 1
		}
	}
	if split <= 0 || split >= length {
		return Spec{}, errors.NewConfig("split-index",
			fmt.Sprintf("must fall between 1 and %d for %q", length-1, target))
	}

	return Spec{
		Label:  label,
		Target: string(normalized),
		Suffix: string(normalized[:split]),
		Prefix: string(normalized[split:]),
	}, nil
}

// Parts builds a Spec from explicit suffix and prefix text. Both parts
// must be non-empty after normalization.
func Parts(label, suffix, prefix string, n *hebrew.Normalizer) (Spec, error) {
	if n == nil {
		n = hebrew.Default()
	}
	ns := n.Normalize(suffix)
	np := n.Normalize(prefix)

	if ns == "" {
		return Spec{}, errors.NewConfig("suffix", "must be non-empty after normalization")
	}
	if np == "" {
		return Spec{}, errors.NewConfig("prefix", "must be non-empty after normalization")
	}

	return Spec{
		Label:  label,
		Target: ns + np,
		Suffix: ns,
		Prefix: np,
	}, nil
}
