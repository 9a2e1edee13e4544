package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
)

// DocumentStore keeps JSON documents grouped in collections.
type DocumentStore struct {
	db QueryInterceptor
}

func NewDocumentStore(db QueryInterceptor) *DocumentStore {
	return &DocumentStore{db: db}
}

// Query returns an unfiltered query over collection, the seed of a translation.
func (s *DocumentStore) Query(collection string) *Query {
	return newQuery(collection)
}

// Find executes q and returns the matching documents ordered by id.
func (s *DocumentStore) Find(ctx context.Context, q docquery.Query, opts ...FindOption) ([]models.Document, error) {
	dq, ok := q.(*Query)
	if !ok {
		return nil, fmt.Errorf("query of type %T was not built by this store", q)
	}

	query, args, err := dq.ToSql(opts...)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var (
			id  string
			doc string
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, models.Document{ID: id, Data: []byte(doc)})
	}

	return docs, rows.Err()
}

// Get returns one document by id.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*models.Document, error) {
	query, args, err := sq.Select("id", "CAST(doc AS VARCHAR)").
		From("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var doc string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewResourceNotFoundError("document", id)
	}
	if err != nil {
		return nil, err
	}
	return &models.Document{ID: id, Data: []byte(doc)}, nil
}

// Save inserts documents into collection, replacing documents with the same id.
func (s *DocumentStore) Save(ctx context.Context, collection string, docs ...models.Document) error {
	if len(docs) == 0 {
		return nil
	}

	// one statement cannot upsert the same row twice; the last one wins
	last := make(map[string]int, len(docs))
	for i, d := range docs {
		last[d.ID] = i
	}

	builder := sq.Insert("documents").Columns("collection", "id", "doc")
	for i, d := range docs {
		if last[d.ID] != i {
			continue
		}
		builder = builder.Values(collection, d.ID, string(d.Data))
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes one document. Deleting a missing document is not an error.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	query, args, err := sq.Delete("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Collections returns the names of all non-empty collections.
func (s *DocumentStore) Collections(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("DISTINCT collection").
		From("documents").
		OrderBy("collection").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Exists reports whether collection holds at least one document.
func (s *DocumentStore) Exists(ctx context.Context, collection string) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("documents").
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}
