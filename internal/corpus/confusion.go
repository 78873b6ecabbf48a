package corpus

import (
	"strings"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
)

// Common English misspelling patterns, applied to frequent words to derive
// plausible misspellings.
var confusionPatterns = [][2]string{
	{"ei", "ie"}, {"a", "e"}, {"e", "a"},
	{"ant", "ent"}, {"ent", "ant"},
	{"ce", "se"}, {"se", "ce"},
	{"able", "ible"}, {"ible", "able"},
	{"ary", "ery"}, {"ery", "ary"},
	{"er", "or"}, {"or", "er"},
	{"mm", "m"}, {"m", "mm"},
	{"ll", "l"}, {"l", "ll"},
	{"cc", "c"}, {"c", "cc"},
	{"ss", "s"}, {"s", "ss"},
	{"tion", "sion"}, {"sion", "tion"},
}

// ConfusionSet derives a misspelling -> word map by applying common error
// patterns to the n most frequent words. Misspellings that collide with a
// frequent word are dropped. Words of three letters or fewer are skipped.
func ConfusionSet(m *frequency.Model, n int) map[string]string {
	top := m.TopWords(n)
	known := make(map[string]bool, len(top))
	for _, wc := range top {
		known[wc.Word] = true
	}

	set := make(map[string]string)
	for _, wc := range top {
		word := wc.Word
		if len(word) <= 3 {
			continue
		}
		for _, p := range confusionPatterns {
			if !strings.Contains(word, p[0]) {
				continue
			}
			misspelled := strings.ReplaceAll(word, p[0], p[1])
			if !known[misspelled] {
				set[misspelled] = word
			}
		}
	}
	return set
}
