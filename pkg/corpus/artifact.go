package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jobserve/jobserve/internal/utils"
)

// The persisted index is a plain JSON object keyed by prefix, with
// rank-ordered word arrays as values. This shape is the compatibility
// surface between the indexer and the lookup service: any reader/writer
// pair must agree on it exactly. encoding/json sorts object keys, so
// serialization is deterministic and rebuilds from the same corpus are
// byte-identical.

// SaveIndex atomically writes the prefix index to path.
// A failed write never leaves a partial artifact behind.
func SaveIndex(path string, index PrefixIndex) error {
	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode prefix index: %w", err)
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to publish prefix index to %s: %w", path, err)
	}
	log.Debugf("Published prefix index: %s (%d prefixes, %d bytes)", path, len(index), len(data))
	return nil
}

// SaveFrequencies atomically writes the word frequency map to path.
func SaveFrequencies(path string, freqs WordFrequency) error {
	data, err := json.Marshal(freqs)
	if err != nil {
		return fmt.Errorf("failed to encode word frequencies: %w", err)
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to publish word frequencies to %s: %w", path, err)
	}
	log.Debugf("Published word frequencies: %s (%d words)", path, len(freqs))
	return nil
}

// LoadIndex reads a persisted prefix index. Missing or corrupt files are
// errors for the caller to treat as fatal startup conditions.
func LoadIndex(path string) (PrefixIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefix index %s: %w", path, err)
	}
	var index PrefixIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse prefix index %s: %w", path, err)
	}
	if index == nil {
		index = make(PrefixIndex)
	}
	return index, nil
}

// LoadFrequencies reads a persisted word frequency map.
func LoadFrequencies(path string) (WordFrequency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word frequencies %s: %w", path, err)
	}
	var freqs WordFrequency
	if err := json.Unmarshal(data, &freqs); err != nil {
		return nil, fmt.Errorf("failed to parse word frequencies %s: %w", path, err)
	}
	for word, count := range freqs {
		if count < 1 {
			return nil, fmt.Errorf("invalid frequency %d for word %q in %s", count, word, path)
		}
	}
	if freqs == nil {
		freqs = make(WordFrequency)
	}
	return freqs, nil
}
