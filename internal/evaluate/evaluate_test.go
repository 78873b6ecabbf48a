package evaluate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
)

type mapCorrector map[string]string

func (m mapCorrector) CorrectWord(word string) string {
	if c, ok := m[word]; ok {
		return c
	}
	return word
}

func TestMisspellBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		out := Misspell(rng, "hello", 1)
		assert.GreaterOrEqual(t, len(out), 4)
		assert.LessOrEqual(t, len(out), 6)
	}
	assert.Equal(t, "a", Misspell(rng, "a", 1))
}

func TestTestSet(t *testing.T) {
	m := frequency.NewModel()
	m.AddWord("the", 10)
	m.AddWord("cat", 5)

	rng := rand.New(rand.NewSource(1))
	pairs := TestSet(rng, m, 50, 0.5, 2)
	require.Len(t, pairs, 50)
	for _, p := range pairs {
		assert.Contains(t, []string{"the", "cat"}, p.Want)
	}

	assert.Nil(t, TestSet(rng, frequency.NewModel(), 10, 0.5, 2))
}

func TestEvaluatePerfectCorrector(t *testing.T) {
	pairs := []Pair{
		{Input: "teh", Want: "the"},
		{Input: "cat", Want: "cat"},
	}
	res := Evaluate(mapCorrector{"teh": "the"}, pairs)

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Correct)
	assert.InDelta(t, 0.5, res.Accuracy, 1e-9)
	assert.InDelta(t, 1.0, res.Precision, 1e-9)
	assert.InDelta(t, 1.0, res.Recall, 1e-9)
	assert.InDelta(t, 1.0, res.F1, 1e-9)
}

func TestEvaluateIdentityCorrector(t *testing.T) {
	pairs := []Pair{
		{Input: "teh", Want: "the"},
		{Input: "caz", Want: "cat"},
	}
	res := Evaluate(mapCorrector{}, pairs)

	assert.Equal(t, 0, res.Correct)
	assert.Equal(t, 0.0, res.Accuracy)
	assert.Equal(t, 0.0, res.Precision)
	assert.Equal(t, 0.0, res.F1)
}

func TestEvaluateEmpty(t *testing.T) {
	res := Evaluate(mapCorrector{}, nil)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0.0, res.Accuracy)
}
