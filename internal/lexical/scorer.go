package lexical

import "strings"

// Signals holds the lexical similarity signals for one candidate.
type Signals struct {
	// Fuzzy is the token-set similarity in [0,1].
	Fuzzy float64
	// Prefix is 1 when the candidate name starts with the query, else 0.
	Prefix float64
	// Substring is 1 when the query is a contiguous substring of the name, else 0.
	Substring float64
}

// Scorer computes lexical similarity between a normalized query and candidate names.
type Scorer struct{}

// NewScorer creates a lexical scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns the lexical signals for the given normalized query against a
// candidate name. The name is lowercased before comparison; the query is
// expected to be normalized already. An empty query produces all-zero signals
// so that it never matches everything.
func (s *Scorer) Score(query, name string) Signals {
	if query == "" {
		return Signals{}
	}
	lower := strings.ToLower(name)
	sig := Signals{
		Fuzzy: float64(TokenSetRatio(query, lower)) / 100.0,
	}
	if strings.HasPrefix(lower, query) {
		sig.Prefix = 1
	}
	if strings.Contains(lower, query) {
		sig.Substring = 1
	}
	return sig
}
