package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/jobserve/jobserve/pkg/corpus"
)

// Completer answers prefix queries live from a Patricia trie over the
// vocabulary, without the precomputed table. It serves the interactive CLI
// and doubles as a cross-check for table results in tests.
//
// Ordering matches the table on frequency; ties break lexicographically
// rather than by corpus first-occurrence, since a frequency map carries no
// insertion order. The trie is immutable once all words are added, so
// concurrent Suggest calls need no locking.
type Completer struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
}

// NewCompleter returns an empty completer.
func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// NewCompleterFromFrequencies builds a completer over a whole vocabulary.
func NewCompleterFromFrequencies(freqs corpus.WordFrequency) *Completer {
	c := NewCompleter()
	for word, count := range freqs {
		c.AddWord(word, count)
	}
	return c
}

// AddWord inserts a normalized word with its corpus frequency.
func (c *Completer) AddWord(word string, frequency int) {
	c.trie.Insert(patricia.Prefix(word), frequency)
	c.totalWords++
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
}

// Suggest walks the subtree under the lowercased prefix and returns the
// words sorted by frequency descending. A word equal to the prefix is a
// valid completion of itself and stays in the results.
func (c *Completer) Suggest(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(prefix)

	var suggestions []Suggestion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		freq, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			freq = 1
		}
		suggestions = append(suggestions, Suggestion{
			Word:      string(p),
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []Suggestion{}
	}

	// Trie visit order depends on node layout, so the tie-break is made
	// explicit instead of relying on it.
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Stats returns counters about the loaded vocabulary.
func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
}
