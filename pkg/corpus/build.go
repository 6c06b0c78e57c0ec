/*
Package corpus builds the prefix index that backs job-title word completion.

This is the offline half of the pipeline. It takes raw job-title strings,
normalizes them into single lowercase words, counts word frequencies, and
maps every non-empty prefix of every word to the list of words sharing that
prefix, most frequent first. The index is serialized once and loaded
read-only by the lookup service. There is no incremental update path; an
updated corpus means a full rebuild.

Ordering is deterministic: within a prefix, words sort by frequency
descending, ties break by first occurrence in the flattened normalized
corpus. Rebuilding from the same corpus in the same order yields a
byte-identical artifact.
*/
package corpus

import (
	"sort"

	"github.com/charmbracelet/log"
)

// WordFrequency maps a normalized word to how many times it appeared
// across the whole corpus. Every count is >= 1.
type WordFrequency map[string]int

// PrefixIndex maps every generated prefix to the distinct words sharing it,
// sorted by frequency descending with first-seen tie-break. It contains no
// prefix that is not derived from at least one corpus word.
type PrefixIndex map[string][]string

// Builder runs the one-shot batch build. It holds no state between builds
// and has no side effects beyond its return values.
type Builder struct {
	norm      *Normalizer
	minPrefix int
}

// NewBuilder validates the policy and returns a ready builder.
// An invalid policy aborts the batch before any title is read.
func NewBuilder(p Policy) (*Builder, error) {
	norm, err := NewNormalizer(p)
	if err != nil {
		return nil, err
	}
	return &Builder{norm: norm, minPrefix: p.MinPrefixLength}, nil
}

// Build normalizes all titles and produces the frequency map and prefix
// index. An empty corpus yields empty, non-nil maps, not an error.
func (b *Builder) Build(titles []string) (WordFrequency, PrefixIndex) {
	freqs := make(WordFrequency)

	// Distinct words in first-occurrence order. The order feeds the
	// tie-break, so it must survive the map-based counting.
	var order []string

	for _, title := range titles {
		for _, word := range b.norm.Tokens(title) {
			if freqs[word] == 0 {
				order = append(order, word)
			}
			freqs[word]++
		}
	}

	index := make(PrefixIndex)
	for _, word := range order {
		runes := []rune(word)
		for i := b.minPrefix; i <= len(runes); i++ {
			prefix := string(runes[:i])
			index[prefix] = append(index[prefix], word)
		}
	}

	// order holds each word once, so groups cannot contain duplicates;
	// the stable sort keeps first-seen order among equal frequencies.
	for prefix, words := range index {
		sort.SliceStable(words, func(i, j int) bool {
			return freqs[words[i]] > freqs[words[j]]
		})
		index[prefix] = words
	}

	log.Debugf("Built index: %d words, %d prefixes from %d titles", len(freqs), len(index), len(titles))
	return freqs, index
}
