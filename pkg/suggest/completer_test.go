package suggest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobserve/jobserve/pkg/corpus"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestCompleterSuggest(t *testing.T) {
	c := NewCompleter()
	c.AddWord("abap", 2)
	c.AddWord("abacus", 1)
	c.AddWord("koch", 5)

	got := c.Suggest("aba", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "abap", got[0].Word)
	assert.Equal(t, "abacus", got[1].Word)
}

func TestCompleterIncludesExactWord(t *testing.T) {
	c := NewCompleter()
	c.AddWord("account", 3)
	c.AddWord("accountant", 1)

	// A word is always a completion of itself.
	got := c.Suggest("account", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "account", got[0].Word)
}

func TestCompleterCaseFolding(t *testing.T) {
	c := NewCompleter()
	c.AddWord("manager", 2)

	got := c.Suggest("MAN", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "manager", got[0].Word)
}

func TestCompleterUnknownPrefix(t *testing.T) {
	c := NewCompleter()
	c.AddWord("koch", 1)

	assert.Empty(t, c.Suggest("xyz", 0))
	assert.Empty(t, NewCompleter().Suggest("a", 0))
}

func TestCompleterLimit(t *testing.T) {
	c := NewCompleter()
	c.AddWord("mason", 4)
	c.AddWord("mable", 3)
	c.AddWord("maker", 2)

	got := c.Suggest("ma", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "mason", got[0].Word)
	assert.Equal(t, "mable", got[1].Word)
}

func TestCompleterLexicographicTieBreak(t *testing.T) {
	c := NewCompleter()
	c.AddWord("zebra", 1)
	c.AddWord("zander", 1)

	got := c.Suggest("z", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "zander", got[0].Word)
	assert.Equal(t, "zebra", got[1].Word)
}

func TestCompleterAgreesWithTable(t *testing.T) {
	builder, err := corpus.NewBuilder(corpus.Policy{
		MinWordLength:   3,
		MinPrefixLength: 1,
	})
	require.NoError(t, err)

	// Distinct frequencies so both tie-break policies coincide.
	freqs, index := builder.Build([]string{
		"account", "account", "account",
		"accountant", "accountant",
		"accounting",
	})
	table := NewTable(index, freqs)
	completer := NewCompleterFromFrequencies(freqs)

	for _, prefix := range []string{"a", "acc", "account", "accountan"} {
		fromTable := table.Suggest(prefix, 0)
		fromTrie := completer.Suggest(prefix, 0)
		assert.Equal(t, fromTable, fromTrie, "prefix %q", prefix)
	}
}

func TestCompleterStats(t *testing.T) {
	c := NewCompleter()
	c.AddWord("koch", 7)
	c.AddWord("chef", 2)

	stats := c.Stats()
	assert.Equal(t, 2, stats["totalWords"])
	assert.Equal(t, 7, stats["maxFrequency"])
}
