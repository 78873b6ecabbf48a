package corrector

import "sort"

// ScanCandidates runs the brute-force strategy: it compares the word against
// every dictionary entry and keeps those within MaxEditDistance edits,
// ordered by ascending distance, then descending frequency, then word.
// A known word short-circuits to itself at distance 0.
func (c *Corrector) ScanCandidates(word string) []Candidate {
	if c.vocab[word] {
		return []Candidate{{Term: word, Distance: 0, Freq: c.model.WordFrequency(word)}}
	}
	var out []Candidate
	for w := range c.vocab {
		d := EditDistance(word, w)
		if d <= c.config.MaxEditDistance {
			out = append(out, Candidate{Term: w, Distance: d, Freq: c.model.WordFrequency(w)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Freq != out[j].Freq {
			return out[i].Freq > out[j].Freq
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// EditCandidates runs the generative strategy: dictionary words reachable
// within one edit, expanding to two edits only when the one-edit set is
// empty. Results are ordered by descending frequency. When nothing survives
// filtering the original word is returned unchanged.
func (c *Corrector) EditCandidates(word string) []Candidate {
	found := make(map[string]bool)
	e1 := edits1(word, c.config.Alphabet)
	for e := range e1 {
		if c.vocab[e] {
			found[e] = true
		}
	}
	if len(found) == 0 {
		for e := range e1 {
			for e2 := range edits1(e, c.config.Alphabet) {
				if c.vocab[e2] {
					found[e2] = true
				}
			}
		}
	}
	if c.vocab[word] {
		found[word] = true
	}
	if len(found) == 0 {
		return []Candidate{{Term: word, Distance: 0, Freq: c.model.WordFrequency(word)}}
	}
	out := make([]Candidate, 0, len(found))
	for w := range found {
		out = append(out, Candidate{Term: w, Distance: EditDistance(word, w), Freq: c.model.WordFrequency(w)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Freq != out[j].Freq {
			return out[i].Freq > out[j].Freq
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// edits1 returns every string one edit away from word: deletions,
// adjacent transpositions, substitutions and insertions over the alphabet.
func edits1(word, alphabet string) map[string]struct{} {
	set := make(map[string]struct{}, (len(word)+1)*(2*len(alphabet)+2))
	for i := 0; i <= len(word); i++ {
		l, r := word[:i], word[i:]
		if r != "" {
			set[l+r[1:]] = struct{}{}
		}
		if len(r) > 1 {
			set[l+string(r[1])+string(r[0])+r[2:]] = struct{}{}
		}
		for _, ch := range alphabet {
			if r != "" {
				set[l+string(ch)+r[1:]] = struct{}{}
			}
			set[l+string(ch)+r] = struct{}{}
		}
	}
	return set
}
