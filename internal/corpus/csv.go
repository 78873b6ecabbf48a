package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
)

// LoadCSV ingests a tabular corpus. With "word" and "frequency" header
// columns the supplied values overwrite stored counts; otherwise every cell
// is scanned as free text and counts accumulate. Malformed rows are skipped.
func LoadCSV(path string, m *frequency.Model) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	wordCol, freqCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "word":
			wordCol = i
		case "frequency":
			freqCol = i
		}
	}

	var words []string
	if wordCol >= 0 && freqCol >= 0 {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				continue
			}
			if wordCol >= len(rec) || freqCol >= len(rec) {
				continue
			}
			word := strings.ToLower(strings.TrimSpace(rec[wordCol]))
			count, cerr := strconv.Atoi(strings.TrimSpace(rec[freqCol]))
			if cerr != nil || count < 0 || !alphaRe.MatchString(word) {
				continue
			}
			m.SetWord(word, count)
			words = append(words, word)
		}
		return words, nil
	}

	// No word/frequency columns: treat every cell, header included, as text.
	words = append(words, scanCells(header, m)...)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		words = append(words, scanCells(rec, m)...)
	}
	return words, nil
}

// scanCells counts the alphabetic tokens of each cell. Unlike AddText it
// records no bigrams: cells are independent values, not running text.
func scanCells(cells []string, m *frequency.Model) []string {
	var words []string
	for _, cell := range cells {
		for _, w := range tokenRe.FindAllString(strings.ToLower(cell), -1) {
			if alphaRe.MatchString(w) {
				m.AddWord(w, 1)
				words = append(words, w)
			}
		}
	}
	return words
}
