// Package suggest defines the external suggester capability consulted as the
// third vote during word correction.
package suggest

// Suggester proposes a replacement for a single word. ok is false when the
// implementation has no suggestion.
type Suggester interface {
	Suggest(word string) (string, bool)
}

// Trainer is implemented by suggesters that can learn new words.
type Trainer interface {
	Add(words ...string)
}
