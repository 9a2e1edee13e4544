package docquery

import (
	"fmt"
	"strings"
)

// FilterOperator is an operator of the store's native filter algebra.
type FilterOperator string

const (
	OpEqual            FilterOperator = "=="
	OpLess             FilterOperator = "<"
	OpLessOrEqual      FilterOperator = "<="
	OpGreater          FilterOperator = ">"
	OpGreaterOrEqual   FilterOperator = ">="
	OpArrayContains    FilterOperator = "array-contains"
	OpArrayContainsAny FilterOperator = "array-contains-any"
)

// IsRange reports whether op is an inequality.
func (op FilterOperator) IsRange() bool {
	switch op {
	case OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual:
		return true
	default:
		return false
	}
}

// Filter is a single (field, operator, value) constraint.
type Filter struct {
	Field    string         `json:"field" yaml:"field"`
	Operator FilterOperator `json:"op" yaml:"op"`
	Value    any            `json:"value" yaml:"value"`
}

func (f Filter) String() string {
	switch v := f.Value.(type) {
	case string:
		return fmt.Sprintf("%s %s %q", f.Field, f.Operator, v)
	case nil:
		return fmt.Sprintf("%s %s null", f.Field, f.Operator)
	default:
		return fmt.Sprintf("%s %s %v", f.Field, f.Operator, v)
	}
}

// Query is a conjunction of filters against the store. WithFilter returns a
// new Query and never modifies the receiver, so one Query can be refined
// along several branches.
type Query interface {
	WithFilter(field string, op FilterOperator, value any) Query
}

// QuerySet is a disjunction of independently executable queries.
type QuerySet []Query

// NewQuerySet returns the one-element seed set holding q.
func NewQuerySet(q Query) QuerySet {
	return QuerySet{q}
}

// FilterQuery is an in-memory Query that records its filters.
type FilterQuery struct {
	filters []Filter
}

// NewFilterQuery returns a FilterQuery with no filters.
func NewFilterQuery() *FilterQuery {
	return &FilterQuery{}
}

func (q *FilterQuery) WithFilter(field string, op FilterOperator, value any) Query {
	filters := make([]Filter, len(q.filters), len(q.filters)+1)
	copy(filters, q.filters)
	return &FilterQuery{filters: append(filters, Filter{Field: field, Operator: op, Value: value})}
}

// Filters returns a copy of the filters in the order they were applied.
func (q *FilterQuery) Filters() []Filter {
	out := make([]Filter, len(q.filters))
	copy(out, q.filters)
	return out
}

func (q *FilterQuery) String() string {
	return FormatFilters(q.filters)
}

// FormatFilters renders a conjunction of filters, or "<all>" when there are none.
func FormatFilters(filters []Filter) string {
	if len(filters) == 0 {
		return "<all>"
	}
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " AND ")
}

// FilterSets extracts the filters of every FilterQuery in qs. Queries of
// other types yield a nil entry.
func FilterSets(qs QuerySet) [][]Filter {
	out := make([][]Filter, 0, len(qs))
	for _, q := range qs {
		fq, ok := q.(*FilterQuery)
		if !ok {
			out = append(out, nil)
			continue
		}
		out = append(out, fq.Filters())
	}
	return out
}
