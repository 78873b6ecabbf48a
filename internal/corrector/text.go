package corrector

import (
	"regexp"
	"strings"
)

var (
	tokenRe      = regexp.MustCompile(`[A-Za-z]+|\d+|[^\sA-Za-z0-9]`)
	wordRe       = regexp.MustCompile(`^[a-z]+$`)
	punctSpaceRe = regexp.MustCompile(`\s+([,.!?:;])`)
)

// Tokenize splits text into word, number and punctuation tokens.
func Tokenize(text string) []string { return tokenRe.FindAllString(text, -1) }

func isWord(tok string) bool { return wordRe.MatchString(strings.ToLower(tok)) }

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// restoreCase keeps the original token when the correction is just its
// lowercase form, and carries Title/UPPER case over to replacements.
func restoreCase(orig, corrected string) string {
	if corrected == strings.ToLower(orig) {
		return orig
	}
	if isTitle(orig) {
		return title(corrected)
	}
	if isUpper(orig) {
		return strings.ToUpper(corrected)
	}
	return corrected
}

func joinTokens(tokens []string) string {
	return punctSpaceRe.ReplaceAllString(strings.Join(tokens, " "), "$1")
}

// CorrectText corrects every word token in text in isolation. Punctuation
// and numeric tokens pass through unchanged; tokens are rejoined with single
// spaces and punctuation re-attached to the preceding word.
func (c *Corrector) CorrectText(text string) string {
	if text == "" {
		return text
	}
	tokens := Tokenize(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if !isWord(tok) {
			out[i] = tok
			continue
		}
		out[i] = restoreCase(tok, c.CorrectWord(strings.ToLower(tok)))
	}
	return joinTokens(out)
}

// CorrectWithContext corrects text using bigram evidence from each token's
// immediate neighbors to pick among candidates. When context is
// uninformative (one candidate, or no bigram evidence at all) it falls back
// to the vote-based CorrectWord.
func (c *Corrector) CorrectWithContext(text string) string {
	if text == "" {
		return text
	}
	tokens := Tokenize(text)
	lower := make([]string, len(tokens))
	for i, t := range tokens {
		lower[i] = strings.ToLower(t)
	}
	out := make([]string, len(tokens))
	copy(out, tokens)

	for i, tok := range tokens {
		if !isWord(tok) {
			continue
		}
		w := lower[i]
		if c.vocab[w] {
			continue
		}
		if corr, ok := c.userCorrections[w]; ok {
			out[i] = restoreCase(tok, corr)
			continue
		}

		pool := c.contextPool(w)
		if len(pool) <= 1 {
			out[i] = restoreCase(tok, c.CorrectWord(w))
			continue
		}

		var left, right string
		if i > 0 {
			left = lower[i-1]
		}
		if i+1 < len(tokens) {
			right = lower[i+1]
		}
		best, bestScore := "", -1
		for _, cand := range pool {
			score := 0
			if left != "" {
				score += c.model.BigramFrequency(left, cand)
			}
			if right != "" {
				score += c.model.BigramFrequency(cand, right)
			}
			if score > bestScore {
				best, bestScore = cand, score
			}
		}
		if bestScore <= 0 {
			// no contextual evidence for any candidate
			out[i] = restoreCase(tok, c.CorrectWord(w))
			continue
		}
		out[i] = restoreCase(tok, best)
	}
	return joinTokens(out)
}

// contextPool collects the distinct candidates considered during contextual
// correction: the brute-force list, extended with the generative list when
// the scan yields nothing better than the original word.
func (c *Corrector) contextPool(word string) []string {
	var pool []string
	seen := make(map[string]bool)
	scan := c.ScanCandidates(word)
	for _, cd := range scan {
		if !seen[cd.Term] {
			pool = append(pool, cd.Term)
			seen[cd.Term] = true
		}
	}
	if len(scan) == 0 || scan[0].Term == word {
		for _, cd := range c.EditCandidates(word) {
			if !seen[cd.Term] {
				pool = append(pool, cd.Term)
				seen[cd.Term] = true
			}
		}
	}
	return pool
}
