package embedding

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/northbeam/mitsuke/internal/config"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(16)
	ctx := context.Background()

	a, err := e.Embed(ctx, "green tea")
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Embed(ctx, "green tea")
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 16 {
		t.Fatalf("dimension = %d, want 16", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("embeddings for identical text differ")
		}
	}

	other, _ := e.Embed(ctx, "black coffee")
	same := true
	for i := range a {
		if a[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts produced identical embeddings")
	}
}

func TestMockEmbedder_UnitNorm(t *testing.T) {
	e := NewMockEmbedder(32)
	emb, err := e.Embed(context.Background(), "anything")
	if err != nil {
		t.Fatal(err)
	}
	var norm float64
	for _, v := range emb {
		norm += float64(v * v)
	}
	if math.Abs(norm-1.0) > 1e-5 {
		t.Errorf("norm = %f, want 1.0", norm)
	}
}

func TestMockEmbedder_Batch(t *testing.T) {
	e := NewMockEmbedder(8)
	out, err := e.EmbedBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("batch len = %d", len(out))
	}
}

func TestOllamaEmbedder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"embedding": [0.1, 0.2, 0.3]}`))
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(srv.URL, "nomic-embed-text", 3)
	emb, err := e.Embed(context.Background(), "green tea")
	if err != nil {
		t.Fatal(err)
	}
	if len(emb) != 3 {
		t.Errorf("dimension = %d, want 3", len(emb))
	}
}

func TestOllamaEmbedder_DimensionMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"embedding": [0.1, 0.2]}`))
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(srv.URL, "nomic-embed-text", 3)
	if _, err := e.Embed(context.Background(), "green tea"); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestOllamaEmbedder_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(srv.URL, "nomic-embed-text", 3)
	if _, err := e.Embed(context.Background(), "green tea"); err == nil {
		t.Error("expected error on 500 response")
	}
}

func TestNewEmbedder_Factory(t *testing.T) {
	e, err := NewEmbedder(&config.EmbeddingConfig{Provider: "mock", Dimensions: 8})
	if err != nil {
		t.Fatal(err)
	}
	if e.Dimensions() != 8 {
		t.Errorf("dimensions = %d, want 8", e.Dimensions())
	}

	if _, err := NewEmbedder(&config.EmbeddingConfig{Provider: "bogus"}); err == nil {
		t.Error("expected error for unknown provider")
	}

	cached, err := NewEmbedder(&config.EmbeddingConfig{Provider: "mock", Dimensions: 8, CacheSize: 100})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cached.(*CachedEmbedder); !ok {
		t.Errorf("expected CachedEmbedder, got %T", cached)
	}
}
