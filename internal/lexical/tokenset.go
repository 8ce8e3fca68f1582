package lexical

import (
	"math"
	"sort"
	"strings"
)

// Tokens returns the sorted set of unique whitespace-separated tokens in s, lowercased.
// Order and duplication in the input do not affect the result.
func Tokens(s string) []string {
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		seen[tok] = true
	}
	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// Ratio returns a 0-100 similarity between a and b based on edit distance:
// round(100 * (1 - distance/maxLen)). Identical strings (including two empty
// strings) score 100; an empty string against a non-empty one scores 0.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	if maxLen == 0 {
		return 100
	}
	dist := LevenshteinDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(maxLen))))
}

// TokenSetRatio returns a 0-100 similarity between the token sets of a and b.
// It is symmetric and insensitive to token order and duplication.
//
// The algorithm splits both inputs into sorted unique token sets, forms the
// intersection and the two differences, and compares three reconstructed
// strings pairwise with Ratio, keeping the best:
//
//	base  = sorted intersection
//	combA = base + tokens only in a
//	combB = base + tokens only in b
//
// A large shared token set drives the score toward 100 even when one side has
// extra tokens, since base is then a prefix of both combinations. If either
// input has no tokens the result is 0.
func TokenSetRatio(a, b string) int {
	tokensA := Tokens(a)
	tokensB := Tokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(tokensA))
	for _, tok := range tokensA {
		setA[tok] = true
	}
	setB := make(map[string]bool, len(tokensB))
	for _, tok := range tokensB {
		setB[tok] = true
	}

	var intersection, onlyA, onlyB []string
	for _, tok := range tokensA {
		if setB[tok] {
			intersection = append(intersection, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for _, tok := range tokensB {
		if !setA[tok] {
			onlyB = append(onlyB, tok)
		}
	}

	base := strings.Join(intersection, " ")
	combA := joinParts(base, strings.Join(onlyA, " "))
	combB := joinParts(base, strings.Join(onlyB, " "))

	best := Ratio(base, combA)
	if r := Ratio(base, combB); r > best {
		best = r
	}
	if r := Ratio(combA, combB); r > best {
		best = r
	}
	return best
}

// joinParts joins two strings with a space, skipping empty parts.
func joinParts(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
