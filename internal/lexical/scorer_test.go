package lexical

import "testing"

func TestScorer_ExactMatch(t *testing.T) {
	s := NewScorer()
	sig := s.Score("green tea 250g", "Green Tea 250g")
	if sig.Fuzzy != 1.0 {
		t.Errorf("fuzzy = %f, want 1.0", sig.Fuzzy)
	}
	if sig.Prefix != 1.0 || sig.Substring != 1.0 {
		t.Errorf("boosts = %f/%f, want 1/1", sig.Prefix, sig.Substring)
	}
}

func TestScorer_PrefixAndSubstring(t *testing.T) {
	s := NewScorer()

	sig := s.Score("green tea", "Green Tea 250g")
	if sig.Prefix != 1.0 {
		t.Errorf("prefix = %f, want 1.0", sig.Prefix)
	}
	if sig.Substring != 1.0 {
		t.Errorf("substring = %f, want 1.0", sig.Substring)
	}

	// Substring but not prefix.
	sig = s.Score("tea 250g", "Green Tea 250g")
	if sig.Prefix != 0 {
		t.Errorf("prefix = %f, want 0", sig.Prefix)
	}
	if sig.Substring != 1.0 {
		t.Errorf("substring = %f, want 1.0", sig.Substring)
	}

	// Neither.
	sig = s.Score("coffee", "Green Tea 250g")
	if sig.Prefix != 0 || sig.Substring != 0 {
		t.Errorf("boosts = %f/%f, want 0/0", sig.Prefix, sig.Substring)
	}
}

func TestScorer_EmptyQuery(t *testing.T) {
	s := NewScorer()
	sig := s.Score("", "Green Tea 250g")
	if sig.Fuzzy != 0 || sig.Prefix != 0 || sig.Substring != 0 {
		t.Errorf("empty query signals = %+v, want all zero", sig)
	}
}

func TestScorer_FuzzyInRange(t *testing.T) {
	s := NewScorer()
	names := []string{"Green Tea 250g", "Black Tea 100g", "Green Coffee", "Jeans"}
	for _, name := range names {
		sig := s.Score("green tea", name)
		if sig.Fuzzy < 0 || sig.Fuzzy > 1 {
			t.Errorf("fuzzy for %q = %f out of [0,1]", name, sig.Fuzzy)
		}
	}
}
