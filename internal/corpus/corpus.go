// Package corpus loads dictionaries and corpora into a frequency model and
// exports frequencies back out.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
)

var (
	tokenRe = regexp.MustCompile(`\w+`)
	alphaRe = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// AddText tokenizes free text on non-word characters and accumulates counts
// for the alphabetic tokens, including adjacent-pair bigrams. Returns the
// tokens that were counted.
func AddText(text string, m *frequency.Model) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	words := raw[:0]
	for _, w := range raw {
		if alphaRe.MatchString(w) {
			words = append(words, w)
		}
	}
	for _, w := range words {
		m.AddWord(w, 1)
	}
	for i := 0; i+1 < len(words); i++ {
		m.AddBigram(words[i], words[i+1], 1)
	}
	return words
}

// LoadTextFile ingests a plain-text corpus file via AddText.
func LoadTextFile(path string, m *frequency.Model) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	return AddText(string(data), m), nil
}

// LoadWordList reads a "word count" file, one entry per line, overwriting
// stored counts. Lines with fewer than two fields or an unparsable count are
// skipped. Large files are memory-mapped before scanning. Returns the words
// in file order.
func LoadWordList(path string, m *frequency.Model) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if mm, merr := mmap.Map(f, mmap.RDONLY, 0); merr == nil {
		defer mm.Unmap()
		r = bytes.NewReader(mm)
	}

	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		parts := strings.Fields(strings.TrimSpace(s.Text()))
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int(fv)
			} else {
				continue
			}
		}
		if count < 0 {
			continue
		}
		m.SetWord(word, count)
		words = append(words, word)
	}
	if err := s.Err(); err != nil {
		return words, fmt.Errorf("scan dictionary: %w", err)
	}
	return words, nil
}

// ExportWordFrequencies writes all word frequencies to path in descending
// frequency order, one "word count" line per entry.
func ExportWordFrequencies(path string, m *frequency.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := m.ExportSorted(f); err != nil {
		f.Close()
		return fmt.Errorf("write export: %w", err)
	}
	return f.Close()
}
