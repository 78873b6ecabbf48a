package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "cat", ",", "sat", "!"}, Tokenize("the cat, sat!"))
	assert.Equal(t, []string{"call", "me", "at", "123"}, Tokenize("call me at 123"))
	assert.Nil(t, Tokenize(""))
}

func TestCorrectTextRoundTrip(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50, "sat": 20})

	assert.Equal(t, "the cat sat", c.CorrectText("the cat sat"))
}

func TestCorrectTextFixesMisspellings(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50, "sat": 20})

	assert.Equal(t, "the cat sat", c.CorrectText("teh cat sat"))
}

func TestCorrectTextPassThrough(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50})

	assert.Equal(t, "the cat, 123!", c.CorrectText("the cat, 123!"))
	assert.Equal(t, "42", c.CorrectText("42"))
	assert.Equal(t, "...", c.CorrectText(". . ."))
	assert.Equal(t, "", c.CorrectText(""))
}

func TestCorrectTextPreservesCase(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50})

	assert.Equal(t, "The cat", c.CorrectText("The cat"))
	assert.Equal(t, "The cat", c.CorrectText("Teh cat"))
	assert.Equal(t, "THE cat", c.CorrectText("TEH cat"))
}

func TestCorrectWithContextDisambiguation(t *testing.T) {
	c := newTestCorrector(map[string]int{"how": 100, "are": 80, "arm": 80, "you": 90})
	c.Model().AddBigram("how", "are", 5)

	assert.Equal(t, "how are you", c.CorrectWithContext("how arr you"))
}

func TestCorrectWithContextRightNeighbor(t *testing.T) {
	c := newTestCorrector(map[string]int{"how": 100, "are": 80, "arm": 80, "you": 90})
	c.Model().AddBigram("arm", "you", 7)

	assert.Equal(t, "how arm you", c.CorrectWithContext("how arr you"))
}

func TestCorrectWithContextNoEvidenceFallsBackToVote(t *testing.T) {
	// Without bigram evidence the contextual mode must agree with the
	// context-free mode.
	c := newTestCorrector(map[string]int{"how": 100, "are": 90, "arm": 80, "you": 90})

	assert.Equal(t, c.CorrectText("how arr you"), c.CorrectWithContext("how arr you"))
}

func TestCorrectWithContextLeavesKnownTokensAlone(t *testing.T) {
	c := newTestCorrector(map[string]int{"the": 100, "cat": 50, "sat": 20})
	c.Model().AddBigram("the", "cat", 3)

	assert.Equal(t, "the cat sat, 42!", c.CorrectWithContext("the cat sat, 42!"))
}

func TestCorrectWithContextUserOverride(t *testing.T) {
	c := newTestCorrector(map[string]int{"how": 100, "are": 80, "arm": 80, "you": 90})
	c.Model().AddBigram("how", "arm", 9)
	assert.NoError(t, c.AddUserCorrection("arr", "are"))

	// the personal correction wins even against contextual evidence
	assert.Equal(t, "how are you", c.CorrectWithContext("how arr you"))
}

func TestRestoreCase(t *testing.T) {
	assert.Equal(t, "The", restoreCase("Teh", "the"))
	assert.Equal(t, "THE", restoreCase("TEH", "the"))
	assert.Equal(t, "the", restoreCase("teh", "the"))
	assert.Equal(t, "Word", restoreCase("Word", "word"))
}
