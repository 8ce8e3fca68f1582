// Package models defines core data structures for catalog items, queries, and search results.
package models

// CatalogItem is a single searchable catalog entry. Items are immutable once loaded.
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Candidate holds the per-signal scores for one catalog item during a search.
// AIScore comes from the vector index, the remaining signals from the lexical scorer.
type Candidate struct {
	Item       CatalogItem
	AIScore    float64
	FuzzyScore float64
	Prefix     float64
	Substring  float64
	FinalScore float64
}

// SearchResult is a single ranked hit returned to the caller.
type SearchResult struct {
	Rank           int     `json:"rank"`
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	AIScore        float64 `json:"ai_score"`
	FuzzyScore     float64 `json:"fuzzy_score"`
	PrefixBoost    float64 `json:"prefix_boost"`
	SubstringBoost float64 `json:"substring_boost"`
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Query     string          `json:"query"`
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	QueryTime int64           `json:"query_time_ms"`
}
