// Package evaluate measures corrector quality against synthetically
// misspelled words drawn from a frequency model.
package evaluate

import (
	"math/rand"
	"strings"
	"time"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
)

// Corrector is the single-word correction capability under evaluation.
type Corrector interface {
	CorrectWord(word string) string
}

// Pair is one test case: a possibly misspelled input and the expected word.
type Pair struct {
	Input string
	Want  string
}

// Result aggregates word-level metrics over a test set.
type Result struct {
	Accuracy       float64
	Precision      float64
	Recall         float64
	F1             float64
	AvgTimePerWord time.Duration
	Total          int
	Correct        int
}

// Misspell applies n random single-character edits (insert, delete,
// substitute, transpose) to word.
func Misspell(rng *rand.Rand, word string, n int) string {
	if len(word) <= 1 {
		return word
	}
	const letters = "abcdefghijklmnopqrstuvwxyz"
	chars := []byte(strings.ToLower(word))
	if n > len(word) {
		n = len(word)
	}
	for i := 0; i < n; i++ {
		switch rng.Intn(4) {
		case 0: // insert
			pos := rng.Intn(len(chars) + 1)
			chars = append(chars[:pos], append([]byte{letters[rng.Intn(len(letters))]}, chars[pos:]...)...)
		case 1: // delete
			if len(chars) > 1 {
				pos := rng.Intn(len(chars))
				chars = append(chars[:pos], chars[pos+1:]...)
			}
		case 2: // substitute
			pos := rng.Intn(len(chars))
			for {
				ch := letters[rng.Intn(len(letters))]
				if ch != chars[pos] {
					chars[pos] = ch
					break
				}
			}
		case 3: // transpose
			if len(chars) > 1 {
				pos := rng.Intn(len(chars) - 1)
				chars[pos], chars[pos+1] = chars[pos+1], chars[pos]
			}
		}
	}
	return string(chars)
}

// TestSet draws size words from the model's top 1000 and misspells each with
// probability errorRate, applying up to maxErrors edits.
func TestSet(rng *rand.Rand, m *frequency.Model, size int, errorRate float64, maxErrors int) []Pair {
	top := m.TopWords(1000)
	if len(top) == 0 {
		return nil
	}
	if maxErrors < 1 {
		maxErrors = 1
	}
	pairs := make([]Pair, 0, size)
	for i := 0; i < size; i++ {
		word := top[rng.Intn(len(top))].Word
		input := word
		if rng.Float64() < errorRate {
			input = Misspell(rng, word, 1+rng.Intn(maxErrors))
		}
		pairs = append(pairs, Pair{Input: input, Want: word})
	}
	return pairs
}

// Evaluate runs the corrector over the pairs and computes accuracy,
// precision, recall and F1. Pairs whose input equals the expected word are
// timed but excluded from the error metrics.
func Evaluate(c Corrector, pairs []Pair) Result {
	var res Result
	res.Total = len(pairs)
	if res.Total == 0 {
		return res
	}

	var tp, fp, fn int
	var elapsed time.Duration
	for _, p := range pairs {
		if p.Input == p.Want {
			continue
		}
		start := time.Now()
		got := c.CorrectWord(p.Input)
		elapsed += time.Since(start)

		if strings.EqualFold(got, p.Want) {
			res.Correct++
			tp++
		} else {
			fp++
			fn++
		}
	}

	res.Accuracy = float64(res.Correct) / float64(res.Total)
	if tp+fp > 0 {
		res.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		res.Recall = float64(tp) / float64(tp+fn)
	}
	if res.Precision+res.Recall > 0 {
		res.F1 = 2 * res.Precision * res.Recall / (res.Precision + res.Recall)
	}
	res.AvgTimePerWord = elapsed / time.Duration(res.Total)
	return res
}
