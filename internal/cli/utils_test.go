package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/northbeam/mitsuke/internal/models"
)

func TestWriteSearchResults_JSON(t *testing.T) {
	response := &models.SearchResponse{
		Query:     "green tea",
		QueryTime: 42,
		Total:     1,
		Results: []*models.SearchResult{
			{
				Rank:        1,
				Name:        "Green Tea 250g",
				Score:       0.9,
				AIScore:     0.9,
				FuzzyScore:  1.0,
				PrefixBoost: 1,
			},
		},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputJSON); err != nil {
		t.Fatalf("WriteSearchResults(json): %v", err)
	}
	var decoded models.SearchResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != response.Query || decoded.QueryTime != response.QueryTime {
		t.Errorf("decoded query=%q query_time=%d, want query=%q query_time=%d",
			decoded.Query, decoded.QueryTime, response.Query, response.QueryTime)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Name != "Green Tea 250g" {
		t.Errorf("decoded results: want one result named Green Tea 250g, got %+v", decoded.Results)
	}
}

func TestWriteSearchResults_text(t *testing.T) {
	response := &models.SearchResponse{
		Query:     "green tea",
		QueryTime: 10,
		Total:     1,
		Results: []*models.SearchResult{
			{
				Rank:           1,
				Name:           "Green Tea 250g",
				Score:          0.876,
				AIScore:        0.9,
				FuzzyScore:     1.0,
				PrefixBoost:    1,
				SubstringBoost: 1,
			},
		},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteSearchResults(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"Found 1 results", "10ms", "Rank: 1", "Green Tea 250g", "87.6% match", "prefix", "substring"} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}
}

func TestWriteSearchResults_text_noBoosts(t *testing.T) {
	response := &models.SearchResponse{
		Query:     "oolong",
		QueryTime: 3,
		Total:     1,
		Results: []*models.SearchResult{
			{Rank: 1, Name: "Black Tea 100g", Score: 0.344, AIScore: 0.5, FuzzyScore: 0.36},
		},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteSearchResults(text): %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "prefix") || strings.Contains(out, "substring") {
		t.Errorf("boost labels should be omitted when zero:\n%s", out)
	}
}

func TestWriteSearchResults_text_longNameTruncated(t *testing.T) {
	long := strings.Repeat("matcha ", 40)
	response := &models.SearchResponse{
		Query:     "matcha",
		QueryTime: 1,
		Total:     1,
		Results: []*models.SearchResult{
			{Rank: 1, Name: long, Score: 0.5, AIScore: 0.5, FuzzyScore: 0.5},
		},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteSearchResults(text): %v", err)
	}
	out := buf.String()
	if strings.Contains(out, long) {
		t.Error("full name should be truncated in text output")
	}
	if !strings.Contains(out, "...") {
		t.Errorf("truncated name should end with ellipsis:\n%s", out)
	}
}

func TestWriteSearchResults_unknownFormatTreatedAsText(t *testing.T) {
	response := &models.SearchResponse{Query: "x", QueryTime: 0}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, SearchOutputFormat("unknown")); err != nil {
		t.Fatalf("WriteSearchResults(unknown): %v", err)
	}
	if !strings.Contains(buf.String(), "Found") {
		t.Errorf("unknown format should fall back to text; got %q", buf.String())
	}
}
