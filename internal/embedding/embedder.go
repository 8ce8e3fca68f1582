// Package embedding provides text embedding encoders and caching.
package embedding

import "context"

// Embedder produces vector embeddings for text. Implementations must be
// deterministic for a fixed configuration and produce vectors of a fixed
// dimension for the lifetime of the embedder.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
