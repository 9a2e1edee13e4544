package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// NewDB opens the DuckDB database holding the document table.
// An empty path or MemoryPath opens an in-memory database.
func NewDB(path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}

	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	// DuckDB is single-writer; a single connection prevents idle pool
	// connections from blocking WAL checkpointing.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	// keep extensions next to the database; ~/.duckdb may be read-only
	if path != MemoryPath {
		extDir := filepath.Dir(path)
		if _, err := conn.Exec(fmt.Sprintf("SET extension_directory = '%s'", extDir)); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("setting extension directory: %w", err)
		}
	}

	return conn, nil
}
