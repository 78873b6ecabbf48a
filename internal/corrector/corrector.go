// Package corrector implements the spelling-correction engine: candidate
// generation, ensemble voting and context-aware disambiguation over a
// dictionary and frequency model.
package corrector

import (
	"strings"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/customdict"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/suggest"
)

// Frequency assigned to words added through the custom dictionary so they
// always outrank corpus words.
const customWordFrequency = 1_000_000_000

type Corrector struct {
	config          Config
	model           *frequency.Model
	vocab           map[string]bool
	customWords     map[string]bool
	userCorrections map[string]string
	dict            *customdict.Store
	suggester       suggest.Suggester
}

// New builds a Corrector over the supplied frequency model. The suggester
// and store may be nil: without a suggester the external vote defaults to
// the original token, without a store nothing is persisted.
func New(cfg Config, model *frequency.Model, suggester suggest.Suggester, dict *customdict.Store) *Corrector {
	if model == nil {
		model = frequency.NewModel()
	}
	if cfg.MaxEditDistance <= 0 {
		cfg.MaxEditDistance = DefaultConfig().MaxEditDistance
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = DefaultConfig().Alphabet
	}
	if cfg.DefaultFrequency <= 0 {
		cfg.DefaultFrequency = DefaultConfig().DefaultFrequency
	}
	return &Corrector{
		config:          cfg,
		model:           model,
		vocab:           make(map[string]bool),
		customWords:     make(map[string]bool),
		userCorrections: make(map[string]string),
		dict:            dict,
		suggester:       suggester,
	}
}

// Model returns the frequency model backing the corrector.
func (c *Corrector) Model() *frequency.Model { return c.model }

// Known reports whether the lowercase form of word is in the dictionary.
func (c *Corrector) Known(word string) bool {
	return c.vocab[strings.ToLower(word)]
}

// VocabSize returns the number of dictionary words.
func (c *Corrector) VocabSize() int { return len(c.vocab) }

// AddWords inserts words into the dictionary without touching frequencies.
func (c *Corrector) AddWords(words []string) {
	for _, w := range words {
		lw := strings.ToLower(strings.TrimSpace(w))
		if lw != "" {
			c.vocab[lw] = true
		}
	}
}

// AddToDictionary inserts word with the given frequency, overwriting any
// stored count. Zero frequency leaves the model untouched.
func (c *Corrector) AddToDictionary(word string, freq int) {
	lw := strings.ToLower(strings.TrimSpace(word))
	if lw == "" {
		return
	}
	c.vocab[lw] = true
	if freq > 0 {
		c.model.SetWord(lw, freq)
	}
	if t, ok := c.suggester.(suggest.Trainer); ok {
		t.Add(lw)
	}
}

// AddCustomWord adds a word to the custom dictionary and persists it.
func (c *Corrector) AddCustomWord(word string) error {
	lw := strings.ToLower(strings.TrimSpace(word))
	if lw == "" {
		return nil
	}
	if c.dict != nil {
		if err := c.dict.AddWord(lw); err != nil {
			return err
		}
	}
	c.customWords[lw] = true
	c.AddToDictionary(lw, customWordFrequency)
	return nil
}

// AddUserCorrection records a personal correction for a misspelled word.
// Last write wins. The correction target is added to the dictionary with the
// default frequency when unknown.
func (c *Corrector) AddUserCorrection(misspelled, correction string) error {
	miss := strings.ToLower(strings.TrimSpace(misspelled))
	corr := strings.ToLower(strings.TrimSpace(correction))
	if miss == "" || corr == "" {
		return nil
	}
	if c.dict != nil {
		if err := c.dict.SetCorrection(miss, corr); err != nil {
			return err
		}
	}
	c.userCorrections[miss] = corr
	if !c.vocab[corr] {
		c.AddToDictionary(corr, c.config.DefaultFrequency)
	}
	return nil
}

// UserCorrection returns the recorded correction for word, if any.
func (c *Corrector) UserCorrection(word string) (string, bool) {
	corr, ok := c.userCorrections[strings.ToLower(strings.TrimSpace(word))]
	return corr, ok
}

// LoadStored pulls custom words and user corrections from the store into the
// in-memory state. Call once after construction.
func (c *Corrector) LoadStored() error {
	if c.dict == nil {
		return nil
	}
	words, err := c.dict.Words()
	if err != nil {
		return err
	}
	for _, w := range words {
		lw := strings.ToLower(w)
		c.customWords[lw] = true
		c.AddToDictionary(lw, customWordFrequency)
	}
	corrections, err := c.dict.Corrections()
	if err != nil {
		return err
	}
	for miss, corr := range corrections {
		miss, corr = strings.ToLower(miss), strings.ToLower(corr)
		c.userCorrections[miss] = corr
		if !c.vocab[corr] {
			c.AddToDictionary(corr, c.config.DefaultFrequency)
		}
	}
	return nil
}

// CorrectWord corrects a single word. Known words and empty input come back
// unchanged, user corrections override everything, and otherwise the result
// is a plurality vote between the external suggester, the brute-force scan
// and the generative edit search. Vote ties break in that order.
func (c *Corrector) CorrectWord(token string) string {
	word := strings.ToLower(strings.TrimSpace(token))
	if word == "" {
		return token
	}
	if c.vocab[word] {
		return word
	}
	if corr, ok := c.userCorrections[word]; ok {
		return corr
	}

	external := word
	if c.suggester != nil {
		if s, ok := c.suggester.Suggest(word); ok && s != "" {
			external = strings.ToLower(s)
		}
	}
	scan := word
	if cands := c.ScanCandidates(word); len(cands) > 0 {
		scan = cands[0].Term
	}
	edit := word
	if cands := c.EditCandidates(word); len(cands) > 0 {
		edit = cands[0].Term
	}

	proposals := []string{external, scan, edit}
	counts := make(map[string]int, 3)
	for _, p := range proposals {
		counts[p]++
	}
	best := proposals[0]
	for _, p := range proposals[1:] {
		if counts[p] > counts[best] {
			best = p
		}
	}
	return best
}
