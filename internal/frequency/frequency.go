// Package frequency holds word and bigram counts collected from corpora.
package frequency

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

type Model struct {
	words   map[string]int
	bigrams map[string]int
	total   int
}

// WordCount is a (word, frequency) pair used for exports and top-N queries.
type WordCount struct {
	Word  string
	Count int
}

func NewModel() *Model {
	return &Model{
		words:   make(map[string]int),
		bigrams: make(map[string]int),
	}
}

// AddWord accumulates n onto the stored count for word.
func (m *Model) AddWord(word string, n int) {
	if n <= 0 {
		return
	}
	m.words[strings.ToLower(word)] += n
	m.total += n
}

// SetWord overwrites the stored count for word.
func (m *Model) SetWord(word string, n int) {
	if n < 0 {
		return
	}
	lw := strings.ToLower(word)
	m.total += n - m.words[lw]
	m.words[lw] = n
}

// AddBigram accumulates n onto the ordered pair (w1, w2).
func (m *Model) AddBigram(w1, w2 string, n int) {
	if n <= 0 {
		return
	}
	m.bigrams[bigramKey(w1, w2)] += n
}

func bigramKey(w1, w2 string) string {
	return strings.ToLower(w1) + " " + strings.ToLower(w2)
}

// WordFrequency returns the stored count for word, or 0.
func (m *Model) WordFrequency(word string) int {
	return m.words[strings.ToLower(word)]
}

// BigramFrequency returns the stored count for the ordered pair, or 0.
func (m *Model) BigramFrequency(w1, w2 string) int {
	return m.bigrams[bigramKey(w1, w2)]
}

// RelativeFrequency returns the word's share of the total frequency mass,
// in [0, 1]. An empty model yields 0.
func (m *Model) RelativeFrequency(word string) float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.words[strings.ToLower(word)]) / float64(m.total)
}

// Total returns the summed frequency mass across all words.
func (m *Model) Total() int { return m.total }

// Len returns the number of distinct words with a recorded frequency.
func (m *Model) Len() int { return len(m.words) }

func (m *Model) sorted() []WordCount {
	out := make([]WordCount, 0, len(m.words))
	for w, c := range m.words {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// TopWords returns the n most frequent words, most frequent first.
func (m *Model) TopWords(n int) []WordCount {
	s := m.sorted()
	if n < len(s) {
		s = s[:n]
	}
	return s
}

// ExportSorted writes "word count" lines ordered by descending frequency,
// ties broken by ascending word.
func (m *Model) ExportSorted(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, wc := range m.sorted() {
		if _, err := fmt.Fprintf(bw, "%s %d\n", wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}
