// Package suggest is the online half of the pipeline: read-only, ranked
// word completion for typed job-title prefixes. The Table serves the
// precomputed prefix index the corpus package builds; the Completer answers
// the same queries live from a Patricia trie and exists for debugging and
// cross-checking the table.
package suggest

// Suggestion is one ranked completion candidate.
type Suggestion struct {
	Word      string
	Frequency int
}

// Suggester is the interface shared by the table and the live completer.
type Suggester interface {
	// Suggest returns ranked completions for a prefix, at most limit
	// entries (0 means no cap). An unknown prefix yields an empty
	// slice, never an error.
	Suggest(prefix string, limit int) []Suggestion

	// Stats returns basic counters about the loaded vocabulary.
	Stats() map[string]int
}
