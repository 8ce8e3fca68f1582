// Package catalog loads catalog items from external data sources.
package catalog

import (
	"errors"
	"fmt"

	"github.com/northbeam/mitsuke/internal/config"
	"github.com/northbeam/mitsuke/internal/models"
)

// ErrEmptyCatalog is returned when a source yields no usable items.
// An empty catalog is a configuration error and blocks startup.
var ErrEmptyCatalog = errors.New("catalog contains no items")

// Load reads catalog items from the configured source.
// Supported formats: "csv" (default), "sqlite".
func Load(cfg *config.CatalogConfig) ([]models.CatalogItem, error) {
	switch cfg.Format {
	case "csv", "":
		return LoadCSV(cfg.Path)
	case "sqlite":
		return LoadSQLite(cfg.Path, cfg.Table)
	default:
		return nil, fmt.Errorf("unknown catalog format: %s (supported: csv, sqlite)", cfg.Format)
	}
}
