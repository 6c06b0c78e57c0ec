package suggest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jobserve/jobserve/pkg/corpus"
)

// ErrArtifact marks a failure to load the persisted index at startup.
// A service seeing it must fail fast instead of serving empty results.
var ErrArtifact = errors.New("artifact load failed")

// Table answers prefix lookups against the precomputed index. It is
// immutable after construction, so any number of Suggest calls may run
// concurrently without locking.
type Table struct {
	index        corpus.PrefixIndex
	freqs        corpus.WordFrequency
	maxFrequency int
}

// NewTable wraps an in-memory index. freqs may be nil; it only enriches
// suggestions with counts for display and stats.
func NewTable(index corpus.PrefixIndex, freqs corpus.WordFrequency) *Table {
	maxFreq := 0
	for _, count := range freqs {
		if count > maxFreq {
			maxFreq = count
		}
	}
	return &Table{index: index, freqs: freqs, maxFrequency: maxFreq}
}

// LoadTable reads the persisted artifacts from disk. freqsPath may be
// empty when no frequency sidecar is available. Any read or parse failure
// wraps ErrArtifact.
func LoadTable(indexPath, freqsPath string) (*Table, error) {
	index, err := corpus.LoadIndex(indexPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifact, err)
	}

	var freqs corpus.WordFrequency
	if freqsPath != "" {
		freqs, err = corpus.LoadFrequencies(freqsPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArtifact, err)
		}
	}

	log.Debugf("Loaded prefix table: %d prefixes, %d words", len(index), len(freqs))
	return NewTable(index, freqs), nil
}

// Suggest performs an exact lookup of the lowercased prefix.
// The table's keys come from lowercase normalized words, so the incoming
// prefix gets folded here instead of making callers do it. Results keep
// the precomputed rank order. An absent prefix is a normal outcome and
// returns an empty slice.
func (t *Table) Suggest(prefix string, limit int) []Suggestion {
	words := t.index[strings.ToLower(prefix)]
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	suggestions := make([]Suggestion, len(words))
	for i, word := range words {
		suggestions[i] = Suggestion{
			Word:      word,
			Frequency: t.freqs[word],
		}
	}
	return suggestions
}

// Frequencies exposes the loaded frequency map for feeding a live completer.
func (t *Table) Frequencies() corpus.WordFrequency {
	return t.freqs
}

// Stats returns counters about the loaded table.
func (t *Table) Stats() map[string]int {
	return map[string]int{
		"prefixes":     len(t.index),
		"totalWords":   len(t.freqs),
		"maxFrequency": t.maxFrequency,
	}
}
