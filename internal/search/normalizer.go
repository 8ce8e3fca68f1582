// Package search provides the query ranking pipeline: normalization, vector
// retrieval, lexical scoring, score fusion, and result selection.
package search

import "strings"

// Normalizer canonicalizes raw queries before encoding and lexical scoring.
type Normalizer struct {
	stopWords map[string]bool
}

// NewNormalizer creates a normalizer with the given stop words.
func NewNormalizer(stopWords []string) *Normalizer {
	set := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = true
	}
	return &Normalizer{stopWords: set}
}

// Normalize lowercases raw, splits on whitespace, drops stop words, and
// rejoins the surviving tokens with single spaces. It is a pure, total
// function. A query consisting entirely of stop words normalizes to the
// empty string; the rest of the pipeline treats that as a low-signal query
// rather than an error.
func (n *Normalizer) Normalize(raw string) string {
	words := strings.Fields(strings.ToLower(raw))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if n.stopWords[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
