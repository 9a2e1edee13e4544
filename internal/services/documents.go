package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/internal/store"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
)

// DocumentService stores and reads documents by id.
type DocumentService struct {
	store *store.Store
}

func NewDocumentService(st *store.Store) *DocumentService {
	return &DocumentService{store: st}
}

// Load stores the documents in body, a JSON object or array of objects, and
// returns how many were stored.
func (d *DocumentService) Load(ctx context.Context, collection string, body []byte) (int, error) {
	if collection == "" {
		return 0, srvErrors.NewInvalidDocumentError(fmt.Errorf("collection name is empty"))
	}

	docs, err := models.ParseDocuments(body)
	if err != nil {
		return 0, srvErrors.NewInvalidDocumentError(err)
	}

	if err := d.store.Documents().Save(ctx, collection, docs...); err != nil {
		return 0, err
	}

	zap.S().Named("document_service").Infow("documents loaded", "collection", collection, "count", len(docs))

	return len(docs), nil
}

func (d *DocumentService) Get(ctx context.Context, collection, id string) (*models.Document, error) {
	return d.store.Documents().Get(ctx, collection, id)
}

func (d *DocumentService) Delete(ctx context.Context, collection, id string) error {
	return d.store.Documents().Delete(ctx, collection, id)
}

func (d *DocumentService) Collections(ctx context.Context) ([]string, error) {
	return d.store.Documents().Collections(ctx)
}
