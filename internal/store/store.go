package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kubev2v/whereql/internal/store/migrations"
)

// Store provides access to all storage repositories.
type Store struct {
	db        *sql.DB
	documents *DocumentStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		documents: NewDocumentStore(newQueryInterceptor(db)),
	}
}

// Migrate creates the schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if err := migrations.Run(ctx, s.db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *Store) Documents() *DocumentStore {
	return s.documents
}

func (s *Store) Close() error {
	return s.db.Close()
}
