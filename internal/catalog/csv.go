package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/northbeam/mitsuke/internal/models"
)

// LoadCSV reads catalog items from a CSV file. The file must have a header row
// with a "name" column (case-insensitive). Rows with a blank name are skipped.
// IDs are assigned sequentially in file order.
func LoadCSV(path string) ([]models.CatalogItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog %s: %w", path, ErrEmptyCatalog)
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	nameCol := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "name") {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("catalog %s is missing a \"name\" column", path)
	}

	var items []models.CatalogItem
	id := int64(1)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		if nameCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" {
			continue
		}
		items = append(items, models.CatalogItem{ID: id, Name: name})
		id++
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("catalog %s: %w", path, ErrEmptyCatalog)
	}
	return items, nil
}
