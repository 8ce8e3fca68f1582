package search

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/northbeam/mitsuke/internal/catalog"
	"github.com/northbeam/mitsuke/internal/config"
	"github.com/northbeam/mitsuke/internal/embedding"
	"github.com/northbeam/mitsuke/internal/lexical"
	"github.com/northbeam/mitsuke/internal/models"
	"github.com/northbeam/mitsuke/internal/vector"
)

// snapshot bundles the catalog and its vector index. A snapshot is immutable
// once built; reloads build a new one and swap the pointer.
type snapshot struct {
	items []models.CatalogItem
	byID  map[int64]models.CatalogItem
	index *vector.FlatIndex
}

// Engine runs the ranking pipeline over an immutable catalog snapshot.
// Concurrent searches share the snapshot without coordination; per-request
// state is never shared.
type Engine struct {
	embedder   embedding.Embedder
	normalizer *Normalizer
	scorer     *lexical.Scorer
	config     *config.SearchConfig
	logger     *zap.Logger
	snap       atomic.Pointer[snapshot]
}

// BuildEngine batch-encodes every item name and builds the vector index.
// Any failure (empty catalog, encoder error, dimension mismatch) is fatal:
// the engine is not usable and the caller must not report readiness.
func BuildEngine(
	ctx context.Context,
	items []models.CatalogItem,
	embedder embedding.Embedder,
	cfg *config.SearchConfig,
	logger *zap.Logger,
) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		embedder:   embedder,
		normalizer: NewNormalizer(cfg.StopWords),
		scorer:     lexical.NewScorer(),
		config:     cfg,
		logger:     logger,
	}
	snap, err := e.buildSnapshot(ctx, items)
	if err != nil {
		return nil, err
	}
	e.snap.Store(snap)
	return e, nil
}

func (e *Engine) buildSnapshot(ctx context.Context, items []models.CatalogItem) (*snapshot, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("cannot build search index: %w", catalog.ErrEmptyCatalog)
	}
	start := time.Now()

	ids := make([]int64, len(items))
	names := make([]string, len(items))
	byID := make(map[int64]models.CatalogItem, len(items))
	for i, item := range items {
		ids[i] = item.ID
		names[i] = item.Name
		byID[item.ID] = item
	}

	vectors, err := e.embedder.EmbedBatch(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	index, err := vector.NewFlatIndex(ids, vectors)
	if err != nil {
		return nil, fmt.Errorf("build vector index: %w", err)
	}

	e.logger.Info("search index built",
		zap.Int("items", len(items)),
		zap.Int("dimensions", index.Dimensions()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &snapshot{items: items, byID: byID, index: index}, nil
}

// Reload rebuilds the index from a new item set and atomically swaps it in.
// In-flight searches keep using the previous snapshot. On error the current
// snapshot is left untouched.
func (e *Engine) Reload(ctx context.Context, items []models.CatalogItem) error {
	snap, err := e.buildSnapshot(ctx, items)
	if err != nil {
		return err
	}
	e.snap.Store(snap)
	return nil
}

// Search runs the ranking pipeline for a raw query and returns at most topK
// results ordered by descending fused score. Encoder failures surface as
// request errors without retry. An empty result set is a valid outcome.
func (e *Engine) Search(ctx context.Context, raw string, topK int) ([]*models.SearchResult, error) {
	if topK <= 0 {
		topK = e.config.DefaultLimit
	}
	if topK > e.config.MaxLimit {
		topK = e.config.MaxLimit
	}
	snap := e.snap.Load()

	normalized := e.normalizer.Normalize(raw)
	queryVec, err := e.embedder.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	// Oversample so lexical re-ranking has material beyond the final cut.
	k := e.config.OversampleFactor * topK
	neighbors, err := snap.index.Search(queryVec, k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	candidates := make([]*models.Candidate, 0, len(neighbors))
	for _, n := range neighbors {
		item, ok := snap.byID[n.ID]
		if !ok {
			continue
		}
		sig := e.scorer.Score(normalized, item.Name)
		c := &models.Candidate{
			Item:       item,
			AIScore:    1 - n.Distance,
			FuzzyScore: sig.Fuzzy,
			Prefix:     sig.Prefix,
			Substring:  sig.Substring,
		}
		c.FinalScore = Fuse(e.config.Weights, c)
		candidates = append(candidates, c)
	}

	selected := Select(candidates, e.config.ScoreThreshold, topK)
	results := make([]*models.SearchResult, len(selected))
	for i, c := range selected {
		results[i] = &models.SearchResult{
			Rank:           i + 1,
			Name:           c.Item.Name,
			Score:          c.FinalScore,
			AIScore:        c.AIScore,
			FuzzyScore:     c.FuzzyScore,
			PrefixBoost:    c.Prefix,
			SubstringBoost: c.Substring,
		}
	}

	e.logger.Debug("search complete",
		zap.String("normalized", normalized),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)
	return results, nil
}

// Size returns the number of items in the current snapshot.
func (e *Engine) Size() int {
	return len(e.snap.Load().items)
}

// Dimensions returns the embedding dimension of the current index.
func (e *Engine) Dimensions() int {
	return e.snap.Load().index.Dimensions()
}
