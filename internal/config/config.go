// Package config provides configuration loading and structs for the Mitsuke server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Search    SearchConfig    `yaml:"search"`
	Watch     WatchConfig     `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig holds the catalog data source settings.
type CatalogConfig struct {
	// Path is the catalog file: a CSV with a "name" column, or a SQLite database.
	Path string `yaml:"path"`
	// Format selects the source type: "csv" (default) or "sqlite".
	Format string `yaml:"format"`
	// Table is the SQLite table holding id/name rows (sqlite format only).
	Table string `yaml:"table"`
}

// EmbeddingConfig holds embedding encoder settings.
type EmbeddingConfig struct {
	// Provider selects the encoder: "ollama" (default) or "mock".
	Provider   string `yaml:"provider"`
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	CacheSize  int    `yaml:"cache_size"`
}

// WeightsConfig holds the score fusion weights. The four weights should sum to 1.0
// for final scores to stay comparable to the 0.1 threshold.
type WeightsConfig struct {
	AI        float64 `yaml:"ai" json:"ai"`
	Fuzzy     float64 `yaml:"fuzzy" json:"fuzzy"`
	Prefix    float64 `yaml:"prefix" json:"prefix"`
	Substring float64 `yaml:"substring" json:"substring"`
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
	// OversampleFactor controls the candidate pool: the vector index is asked
	// for oversample_factor * limit neighbors before lexical re-ranking.
	OversampleFactor int `yaml:"oversample_factor"`
	// ScoreThreshold drops results whose fused score is at or below this value.
	ScoreThreshold float64       `yaml:"score_threshold"`
	Weights        WeightsConfig `yaml:"weights"`
	// StopWords are removed from queries during normalization.
	StopWords []string `yaml:"stop_words"`
}

// WatchConfig holds catalog file watch settings.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
