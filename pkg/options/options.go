// Package options configures the external suggester adapter through
// functional options.
package options

var DefaultOptions = SuggestOptions{
	Alphabet:  "abcdefghijklmnopqrstuvwxyz'",
	MaxErrors: 2,
	TopN:      1,
}

type SuggestOptions struct {
	Alphabet  string
	MaxErrors int
	TopN      int
}

type Options interface {
	Apply(options *SuggestOptions)
}

type FuncConfig struct {
	ops func(options *SuggestOptions)
}

func (w FuncConfig) Apply(conf *SuggestOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SuggestOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithAlphabet(alphabet string) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.Alphabet = alphabet
	})
}

func WithMaxErrors(maxErrors int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.MaxErrors = maxErrors
	})
}

func WithTopN(topN int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.TopN = topN
	})
}
