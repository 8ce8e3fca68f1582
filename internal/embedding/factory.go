package embedding

import (
	"fmt"

	"github.com/northbeam/mitsuke/internal/config"
)

// NewEmbedder creates an embedder from config.
// Supported providers: "ollama" (default), "mock". When cache_size is positive,
// the embedder is wrapped with an LRU cache.
func NewEmbedder(cfg *config.EmbeddingConfig) (Embedder, error) {
	var embedder Embedder
	switch cfg.Provider {
	case "ollama", "":
		embedder = NewOllamaEmbedder(cfg.Endpoint, cfg.Model, cfg.Dimensions)
	case "mock":
		embedder = NewMockEmbedder(cfg.Dimensions)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: ollama, mock)", cfg.Provider)
	}
	if cfg.CacheSize > 0 {
		embedder = NewCachedEmbedder(embedder, cfg.CacheSize)
	}
	return embedder, nil
}
