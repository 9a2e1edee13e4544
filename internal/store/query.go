package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kubev2v/whereql/pkg/docquery"
)

// Query is a docquery.Query over one collection of the document table.
// Filters are compiled into the underlying select builder as they are
// applied; a filter that cannot be compiled poisons the query and the
// error surfaces when it is executed.
type Query struct {
	collection string
	builder    sq.SelectBuilder
	filters    []docquery.Filter
	err        error
}

func newQuery(collection string) *Query {
	return &Query{
		collection: collection,
		builder: sq.Select("id", "CAST(doc AS VARCHAR) AS doc").
			From("documents").
			Where(sq.Eq{"collection": collection}),
	}
}

func (q *Query) WithFilter(field string, op docquery.FilterOperator, value any) docquery.Query {
	f := docquery.Filter{Field: field, Operator: op, Value: value}

	filters := make([]docquery.Filter, len(q.filters), len(q.filters)+1)
	copy(filters, q.filters)

	next := &Query{
		collection: q.collection,
		builder:    q.builder,
		filters:    append(filters, f),
		err:        q.err,
	}
	if next.err != nil {
		return next
	}

	pred, err := filterSql(f)
	if err != nil {
		next.err = err
		return next
	}
	next.builder = q.builder.Where(pred)
	return next
}

// Collection returns the collection the query reads.
func (q *Query) Collection() string {
	return q.collection
}

// Filters returns a copy of the filters applied so far.
func (q *Query) Filters() []docquery.Filter {
	out := make([]docquery.Filter, len(q.filters))
	copy(out, q.filters)
	return out
}

func (q *Query) String() string {
	return docquery.FormatFilters(q.filters)
}

// ToSql renders the query, ordered by document id.
func (q *Query) ToSql(opts ...FindOption) (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	b := q.builder.OrderBy("id")
	for _, opt := range opts {
		b = opt(b)
	}
	return b.ToSql()
}
