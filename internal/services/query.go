package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/internal/store"
	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/scheduler"
	"github.com/kubev2v/whereql/pkg/where"
)

// QueryService answers WHERE expressions against document collections.
type QueryService struct {
	store      *store.Store
	scheduler  *scheduler.Scheduler
	translator *docquery.Translator
}

func NewQueryService(st *store.Store, s *scheduler.Scheduler) *QueryService {
	return &QueryService{
		store:      st,
		scheduler:  s,
		translator: docquery.NewTranslator(),
	}
}

// Translate translates expr into in-memory filter queries without touching
// the store.
func (q *QueryService) Translate(expr string) (docquery.QuerySet, error) {
	return q.translate(docquery.NewQuerySet(docquery.NewFilterQuery()), expr)
}

// Find returns the documents of collection matching expr. Every query of the
// translated set runs on the scheduler; results are concatenated in query
// order, so a document matched by several queries is returned several times.
// An empty expression matches every document.
func (q *QueryService) Find(ctx context.Context, collection, expr string, opts ...store.FindOption) (*models.QueryResult, error) {
	exists, err := q.store.Documents().Exists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, srvErrors.NewCollectionNotFoundError(collection)
	}

	qs, err := q.translate(docquery.NewQuerySet(q.store.Documents().Query(collection)), expr)
	if err != nil {
		return nil, err
	}

	zap.S().Named("query_service").Debugw("where clause translated", "collection", collection, "where", expr, "queries", len(qs))

	futures := make([]*scheduler.Future[scheduler.Result[any]], 0, len(qs))
	for _, query := range qs {
		futures = append(futures, q.scheduler.AddWork(func(ctx context.Context) (any, error) {
			return q.store.Documents().Find(ctx, query, opts...)
		}))
	}

	result := &models.QueryResult{
		Collection: collection,
		Where:      expr,
		Queries:    make([]string, 0, len(qs)),
		Documents:  []models.Document{},
	}

	for i, future := range futures {
		r, err := future.Wait(ctx)
		if err == nil {
			err = r.Err
		}
		if err != nil {
			for _, rest := range futures[i+1:] {
				rest.Stop()
			}
			return nil, fmt.Errorf("query %q: %w", qs[i], err)
		}

		result.Queries = append(result.Queries, fmt.Sprint(qs[i]))
		result.Documents = append(result.Documents, r.Data.([]models.Document)...)
	}

	zap.S().Named("query_service").Debugw("where clause executed", "collection", collection, "documents", len(result.Documents))

	return result, nil
}

func (q *QueryService) translate(seed docquery.QuerySet, expr string) (docquery.QuerySet, error) {
	if strings.TrimSpace(expr) == "" {
		return seed, nil
	}

	node, err := where.Parse([]byte(expr))
	if err != nil {
		return nil, err
	}

	return q.translator.Translate(seed, node)
}
