package suggest

import (
	"github.com/f1monkey/spellchecker"

	"github.com/Saikrishna5339/Auto-text-corrector/pkg/options"
)

// Checker adapts github.com/f1monkey/spellchecker to the Suggester
// capability. The engine treats it as a black box.
type Checker struct {
	sc   *spellchecker.Spellchecker
	topN int
}

func NewChecker(words []string, opts ...options.Options) (*Checker, error) {
	o := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	sc, err := spellchecker.New(o.Alphabet, spellchecker.WithMaxErrors(o.MaxErrors))
	if err != nil {
		return nil, err
	}
	if len(words) > 0 {
		sc.Add(words...)
	}
	return &Checker{sc: sc, topN: o.TopN}, nil
}

// Add teaches the checker new words.
func (c *Checker) Add(words ...string) {
	c.sc.Add(words...)
}

// Suggest returns the checker's best replacement for word. A word the
// checker already knows is its own suggestion.
func (c *Checker) Suggest(word string) (string, bool) {
	if c.sc.IsCorrect(word) {
		return word, true
	}
	suggestions, err := c.sc.Suggest(word, c.topN)
	if err != nil || len(suggestions) == 0 {
		return "", false
	}
	return suggestions[0], true
}
