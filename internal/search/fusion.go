package search

import (
	"sort"

	"github.com/northbeam/mitsuke/internal/config"
	"github.com/northbeam/mitsuke/internal/models"
)

// Fuse combines a candidate's signals into one score using the configured
// weights: w.AI*ai + w.Fuzzy*fuzzy + w.Prefix*prefix + w.Substring*substring.
// With the default weights (0.4/0.4/0.1/0.1) the result stays in (-0.4, 1.0],
// since only the AI signal can go negative.
func Fuse(w config.WeightsConfig, c *models.Candidate) float64 {
	return w.AI*c.AIScore + w.Fuzzy*c.FuzzyScore + w.Prefix*c.Prefix + w.Substring*c.Substring
}

// Select drops candidates whose final score is at or below threshold, sorts
// the remainder descending by final score (stable, so equal scores keep the
// nearest-neighbor order they arrived in), and truncates to topK.
// An empty result is a valid outcome, not an error.
func Select(candidates []*models.Candidate, threshold float64, topK int) []*models.Candidate {
	kept := make([]*models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.FinalScore > threshold {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].FinalScore > kept[j].FinalScore })
	if topK >= 0 && len(kept) > topK {
		kept = kept[:topK]
	}
	return kept
}
