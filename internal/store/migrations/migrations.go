package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		collection VARCHAR NOT NULL,
		id VARCHAR NOT NULL,
		doc JSON NOT NULL,
		PRIMARY KEY (collection, id)
	);`,
}

// Run applies every migration in order. Migrations are idempotent.
func Run(ctx context.Context, db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
