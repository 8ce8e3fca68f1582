package catalog

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/northbeam/mitsuke/internal/models"
)

var validTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads catalog items from a SQLite database. The table must have
// id and name columns; rows with a blank name are skipped.
func LoadSQLite(path, table string) ([]models.CatalogItem, error) {
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid catalog table name: %q", table)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	// Table name is validated above; identifiers cannot be bound as parameters.
	rows, err := db.Query(fmt.Sprintf("SELECT id, name FROM %s ORDER BY id", table))
	if err != nil {
		return nil, fmt.Errorf("query catalog table %s: %w", table, err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("catalog %s table %s: %w", path, table, ErrEmptyCatalog)
	}
	return items, nil
}
