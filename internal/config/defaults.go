package config

// DefaultStopWords are the query stop words removed during normalization.
var DefaultStopWords = []string{"the", "a", "an", "of", "and", "in", "for", "on", "with", "to"}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.Format == "" {
		cfg.Catalog.Format = "csv"
	}
	if cfg.Catalog.Table == "" {
		cfg.Catalog.Table = "products"
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "ollama"
	}
	if cfg.Embedding.Endpoint == "" {
		cfg.Embedding.Endpoint = "http://localhost:11434"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "nomic-embed-text"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 768
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 10
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 100
	}
	if cfg.Search.OversampleFactor == 0 {
		cfg.Search.OversampleFactor = 3
	}
	if cfg.Search.ScoreThreshold == 0 {
		cfg.Search.ScoreThreshold = 0.1
	}
	w := &cfg.Search.Weights
	if w.AI == 0 && w.Fuzzy == 0 && w.Prefix == 0 && w.Substring == 0 {
		w.AI = 0.4
		w.Fuzzy = 0.4
		w.Prefix = 0.1
		w.Substring = 0.1
	}
	if cfg.Search.StopWords == nil {
		cfg.Search.StopWords = DefaultStopWords
	}
}
