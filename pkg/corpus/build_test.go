package corpus

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuilder(t *testing.T, p Policy) *Builder {
	t.Helper()
	b, err := NewBuilder(p)
	require.NoError(t, err)
	return b
}

func TestBuildBasic(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	freqs, index := b.Build([]string{"Senior Account Manager", "Account Executive"})

	assert.Equal(t, WordFrequency{
		"senior":    1,
		"account":   2,
		"manager":   1,
		"executive": 1,
	}, freqs)

	assert.Equal(t, []string{"account"}, index["acc"])
	assert.Equal(t, []string{"manager"}, index["man"])
	assert.Equal(t, []string{"account"}, index["account"])
}

func TestBuildFrequencyRanking(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	_, index := b.Build([]string{"abap", "abacus", "abap"})

	assert.Equal(t, []string{"abap", "abacus"}, index["aba"])
	assert.Equal(t, []string{"abap", "abacus"}, index["a"])
	assert.Equal(t, []string{"abap"}, index["abap"])
	assert.Equal(t, []string{"abacus"}, index["abac"])
}

func TestBuildStopTokens(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	freqs, index := b.Build([]string{"Koch M/W 100%"})

	assert.Equal(t, WordFrequency{"koch": 1}, freqs)
	assert.Equal(t, []string{"koch"}, index["k"])
	assert.Len(t, index, 4) // k, ko, koc, koch
}

func TestBuildEmptyCorpus(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	freqs, index := b.Build(nil)

	assert.NotNil(t, freqs)
	assert.NotNil(t, index)
	assert.Empty(t, freqs)
	assert.Empty(t, index)
}

func TestBuildPrefixCompleteness(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	titles := []string{
		"Senior Software Engineer",
		"Software Developer",
		"Senior Account Manager",
		"Geschäftsführer Verkauf",
	}
	freqs, index := b.Build(titles)

	// Every non-empty prefix of every word must list the word, and a word
	// is always a completion of itself.
	for word := range freqs {
		runes := []rune(word)
		for i := 1; i <= len(runes); i++ {
			prefix := string(runes[:i])
			assert.Contains(t, index[prefix], word, "prefix %q must contain %q", prefix, word)
		}
	}

	// No prefix exists that is not derived from a corpus word.
	for prefix := range index {
		found := false
		for word := range freqs {
			if strings.HasPrefix(word, prefix) {
				found = true
				break
			}
		}
		assert.True(t, found, "prefix %q has no source word", prefix)
	}
}

func TestBuildRankingMonotonicity(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	titles := []string{
		"account manager", "account executive", "account manager",
		"accountant", "accounting clerk", "account manager",
	}
	freqs, index := b.Build(titles)

	for prefix, words := range index {
		for i := 1; i < len(words); i++ {
			assert.GreaterOrEqual(t, freqs[words[i-1]], freqs[words[i]],
				"prefix %q not frequency-descending at %d", prefix, i)
		}
	}
}

func TestBuildTieBreakFirstSeen(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	// zebra and zander both appear once; zebra comes first in the corpus
	// even though zander sorts first lexicographically.
	_, index := b.Build([]string{"Zebra Keeper", "Zander Fischer"})

	assert.Equal(t, []string{"zebra", "zander"}, index["z"])
}

func TestBuildMinPrefixLengthVariant(t *testing.T) {
	p := testPolicy()
	p.MinPrefixLength = 3
	b := mustBuilder(t, p)

	_, index := b.Build([]string{"Senior Account Manager"})

	assert.NotContains(t, index, "s")
	assert.NotContains(t, index, "se")
	assert.Contains(t, index, "sen")
	assert.Equal(t, []string{"senior"}, index["sen"])
}

func TestBuildIdempotence(t *testing.T) {
	titles := []string{
		"Senior Account Manager", "Account Executive",
		"Koch M/W 100%", "Software Engineer", "Account Manager",
	}

	b1 := mustBuilder(t, testPolicy())
	_, index1 := b1.Build(titles)
	b2 := mustBuilder(t, testPolicy())
	_, index2 := b2.Build(titles)

	data1, err := json.Marshal(index1)
	require.NoError(t, err)
	data2, err := json.Marshal(index2)
	require.NoError(t, err)

	assert.Equal(t, data1, data2, "rebuild from the same corpus must be byte-identical")
}

func TestBuildAccentedPrefixes(t *testing.T) {
	b := mustBuilder(t, testPolicy())

	freqs, index := b.Build([]string{"Geschäftsführer"})

	require.Equal(t, WordFrequency{"geschäftsführer": 1}, freqs)
	// Prefix boundaries are rune-based, not byte-based.
	assert.Contains(t, index, "geschä")
	assert.Equal(t, []string{"geschäftsführer"}, index["geschä"])
}
