// Package cli provides CLI utilities for Mitsuke.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/northbeam/mitsuke/internal/models"
	"github.com/northbeam/mitsuke/pkg/utils"
)

// maxNameLen caps item names in text output so one oversized catalog entry
// cannot wreck the terminal layout.
const maxNameLen = 120

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results for %q in %dms\n\n", response.Total, response.Query, response.QueryTime)
	for _, result := range response.Results {
		writeOneResult(w, result)
	}
}

func writeOneResult(w io.Writer, result *models.SearchResult) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Rank: %d | %s\n", result.Rank, utils.Truncate(result.Name, maxNameLen))
	fmt.Fprintf(w, "Score: %.1f%% match (semantic: %.4f, fuzzy: %.4f", result.Score*100, result.AIScore, result.FuzzyScore)
	if result.PrefixBoost > 0 {
		fmt.Fprintf(w, ", prefix")
	}
	if result.SubstringBoost > 0 {
		fmt.Fprintf(w, ", substring")
	}
	fmt.Fprintf(w, ")\n\n")
}

// PrintSearchResults prints search results to stdout in text format.
func PrintSearchResults(response *models.SearchResponse) {
	_ = WriteSearchResults(os.Stdout, response, OutputText)
}
