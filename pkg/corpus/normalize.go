package corpus

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrConfig marks an invalid normalization policy. Builds must abort on it.
var ErrConfig = errors.New("invalid normalization config")

// Policy carries every knob the normalization pipeline needs. Nothing here
// has a hidden default inside the core: callers (usually pkg/config) supply
// all fields explicitly so builds stay reproducible.
type Policy struct {
	// AlphabetExtras lists accented runes accepted in addition to a-z.
	AlphabetExtras string
	// MinWordLength drops tokens shorter than this many runes. 1 keeps all.
	MinWordLength int
	// MinPrefixLength is the shortest generated prefix, counted in runes.
	MinPrefixLength int
	// StopTokens are literal tokens dropped after splitting, e.g. the
	// gender marker "mw" common in job ads.
	StopTokens []string
}

// Normalizer turns raw job titles into normalized words following a Policy.
// Construction validates the policy; a Normalizer never fails afterwards.
type Normalizer struct {
	extras  map[rune]bool
	stop    map[string]bool
	minWord int
}

// NewNormalizer validates the policy and builds the rune/token sets.
func NewNormalizer(p Policy) (*Normalizer, error) {
	if p.MinWordLength < 1 {
		return nil, fmt.Errorf("%w: min_word_length must be >= 1, got %d", ErrConfig, p.MinWordLength)
	}
	if p.MinPrefixLength < 1 {
		return nil, fmt.Errorf("%w: min_prefix_length must be >= 1, got %d", ErrConfig, p.MinPrefixLength)
	}

	extras := make(map[rune]bool, len(p.AlphabetExtras))
	for _, r := range p.AlphabetExtras {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: alphabet extra %q is not a letter", ErrConfig, r)
		}
		extras[unicode.ToLower(r)] = true
	}

	stop := make(map[string]bool, len(p.StopTokens))
	for _, tok := range p.StopTokens {
		lower := strings.ToLower(tok)
		if lower == "" {
			return nil, fmt.Errorf("%w: empty stop token", ErrConfig)
		}
		for _, r := range lower {
			if !isASCIILower(r) && !extras[r] {
				return nil, fmt.Errorf("%w: stop token %q contains runes outside the accepted alphabet", ErrConfig, tok)
			}
		}
		stop[lower] = true
	}

	return &Normalizer{
		extras:  extras,
		stop:    stop,
		minWord: p.MinWordLength,
	}, nil
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// accepts reports whether a lowercased rune belongs to the word alphabet.
func (n *Normalizer) accepts(r rune) bool {
	return isASCIILower(r) || n.extras[r]
}

// Tokens normalizes one raw title into its surviving words, in order.
//
// The title is lowercased, every rune outside the accepted alphabet is
// replaced with a space (so stripped punctuation never concatenates
// neighboring words), and the result is split on whitespace. Stop tokens
// and tokens shorter than the configured minimum are dropped. Invalid
// UTF-8 decodes to U+FFFD, which is outside the alphabet and therefore
// becomes a space: a malformed title degrades to fewer words, it never
// aborts a build.
func (n *Normalizer) Tokens(title string) []string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if n.accepts(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	words := fields[:0]
	for _, tok := range fields {
		if n.stop[tok] {
			continue
		}
		if len([]rune(tok)) < n.minWord {
			continue
		}
		words = append(words, tok)
	}
	return words
}
