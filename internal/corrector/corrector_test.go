package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSuggester map[string]string

func (s stubSuggester) Suggest(word string) (string, bool) {
	v, ok := s[word]
	return v, ok
}

func TestCorrectWordKnownWordIsFixedPoint(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50})

	assert.Equal(t, "the", c.CorrectWord("the"))
	assert.Equal(t, "cat", c.CorrectWord("cat"))
	assert.Equal(t, "cat", c.CorrectWord("  CAT  "))
}

func TestCorrectWordEmptyInput(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100})

	assert.Equal(t, "", c.CorrectWord(""))
	assert.Equal(t, "   ", c.CorrectWord("   "))
}

func TestCorrectWordUserOverride(t *testing.T) {
	c := newTestCorrector(map[string]int{"ten": 100, "tea": 90})

	assert.NoError(t, c.AddUserCorrection("teh", "the"))
	assert.Equal(t, "the", c.CorrectWord("teh"))
	// the correction target was added to the dictionary
	assert.True(t, c.Known("the"))
	// last write wins
	assert.NoError(t, c.AddUserCorrection("teh", "ten"))
	assert.Equal(t, "ten", c.CorrectWord("teh"))
}

func TestCorrectWordMajorityVote(t *testing.T) {
	// Both internal strategies agree on "the"; the external vote for the
	// original token loses 2 to 1.
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50})

	assert.Equal(t, "the", c.CorrectWord("teh"))
}

func TestCorrectWordTieBreakPrefersExternal(t *testing.T) {
	// Strategy A (distance-first) picks "ten", strategy B (frequency-first
	// over the one-edit set, where the transposition "the" is reachable)
	// picks "the". The external suggester disagrees with both, so the
	// three-way tie goes to it.
	model := map[string]int{"ten": 10, "the": 100, "tin": 1}
	c := newTestCorrector(model)
	c.suggester = stubSuggester{"teh": "tin"}

	assert.Equal(t, "ten", c.ScanCandidates("teh")[0].Term)
	assert.Equal(t, "the", c.EditCandidates("teh")[0].Term)
	assert.Equal(t, "tin", c.CorrectWord("teh"))
}

func TestCorrectWordNoSuggestionDefaultsToOriginal(t *testing.T) {
	// With no external suggestion the collaborator votes for the original
	// token; on a three-way tie that vote wins by precedence.
	c := newTestCorrector(map[string]int{"ten": 10, "the": 100})

	assert.Equal(t, "teh", c.CorrectWord("teh"))
}

func TestCorrectWordEmptyDictionary(t *testing.T) {
	c := newTestCorrector(nil)

	assert.Equal(t, "anything", c.CorrectWord("anything"))
}

func TestAddCustomWordOutranksCorpusWords(t *testing.T) {
	c := newTestCorrector(map[string]int{"care": 50, "core": 10})

	assert.NoError(t, c.AddCustomWord("cqre"))
	assert.True(t, c.Known("cqre"))
	assert.Equal(t, "cqre", c.CorrectWord("cqre"))
	// the custom word now dominates the frequency ranking
	assert.Equal(t, "cqre", c.EditCandidates("cqae")[0].Term)
}
