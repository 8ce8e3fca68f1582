package catalog

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/northbeam/mitsuke/internal/config"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "id,name\n1,Green Tea 250g\n2,Black Tea 100g\n3,\n4,Green Coffee\n")
	items, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3 (blank name skipped)", len(items))
	}
	if items[0].Name != "Green Tea 250g" || items[0].ID != 1 {
		t.Errorf("first item = %+v", items[0])
	}
	if items[2].Name != "Green Coffee" || items[2].ID != 3 {
		t.Errorf("ids should be sequential after skips, got %+v", items[2])
	}
}

func TestLoadCSV_NameColumnAnywhere(t *testing.T) {
	path := writeTempCSV(t, "sku,Name,price\nA1,Green Tea,4.99\n")
	items, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Green Tea" {
		t.Errorf("items = %+v", items)
	}
}

func TestLoadCSV_MissingNameColumn(t *testing.T) {
	path := writeTempCSV(t, "id,title\n1,Green Tea\n")
	if _, err := LoadCSV(path); err == nil {
		t.Error("expected error for missing name column")
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	path := writeTempCSV(t, "")
	if _, err := LoadCSV(path); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}

	path = writeTempCSV(t, "id,name\n")
	if _, err := LoadCSV(path); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("header-only err = %v, want ErrEmptyCatalog", err)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := LoadCSV("/nonexistent/products.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE products (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO products (id, name) VALUES (1, 'Green Tea 250g'), (2, ''), (3, 'Green Coffee')`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	items, err := LoadSQLite(path, "products")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ID != 1 || items[0].Name != "Green Tea 250g" {
		t.Errorf("first item = %+v", items[0])
	}
}

func TestLoadSQLite_BadTableName(t *testing.T) {
	if _, err := LoadSQLite("x.db", "products; DROP TABLE"); err == nil {
		t.Error("expected error for invalid table name")
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	if _, err := Load(&config.CatalogConfig{Format: "parquet"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
