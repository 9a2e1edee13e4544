package docquery

import (
	"fmt"

	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/where"
)

// Translator compiles WHERE expression trees into query sets.
// A Translator holds no mutable state and is safe for concurrent use.
type Translator struct {
	successor func(string) string
	toNative  func(where.Node) (any, error)
}

// Option configures a Translator.
type Option func(*Translator)

// WithSuccessor replaces the prefix-successor used for LIKE 'prefix%'.
func WithSuccessor(fn func(string) string) Option {
	return func(t *Translator) {
		t.successor = fn
	}
}

// WithValueConverter replaces the literal-to-native value converter.
func WithValueConverter(fn func(where.Node) (any, error)) Option {
	return func(t *Translator) {
		t.toNative = fn
	}
}

func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		successor: Successor,
		toNative:  ToNative,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTranslator = NewTranslator()

// TranslateWhere compiles node against the seed queries with the default translator.
func TranslateWhere(queries QuerySet, node where.Node) (QuerySet, error) {
	return defaultTranslator.Translate(queries, node)
}

// Translate returns the union of queries equivalent to applying node to
// queries. Any error aborts the whole translation.
func (t *Translator) Translate(queries QuerySet, node where.Node) (QuerySet, error) {
	switch n := node.(type) {
	case *where.BinaryExpr:
		return t.binary(queries, n)
	case *where.ColumnRef:
		// bare column predicate; the store has no truthiness filter so only
		// a literal true matches
		return t.apply(queries, n.Column, where.Equal, &where.BoolValue{Value: true})
	default:
		return nil, srvErrors.NewUnsupportedError(fmt.Sprintf("WHERE clause: %s", describe(node)))
	}
}

func (t *Translator) binary(queries QuerySet, e *where.BinaryExpr) (QuerySet, error) {
	switch e.Op {
	case where.And:
		left, err := t.Translate(queries, e.Left)
		if err != nil {
			return nil, err
		}
		return t.Translate(left, e.Right)
	case where.Or:
		left, err := t.Translate(queries, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.Translate(queries, e.Right)
		if err != nil {
			return nil, err
		}
		return concat(left, right), nil
	}

	col, err := columnOf(e)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case where.In:
		return t.in(queries, col, e)
	case where.Like:
		return t.like(queries, col, e)
	case where.Between:
		return t.between(queries, col, e)
	case where.Contains:
		if _, ok := e.Right.(where.Value); !ok {
			return nil, srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("right side must be a literal value, got %s", describe(e.Right)))
		}
		return t.apply(queries, col, e.Op, e.Right)
	case where.ContainsAny:
		if _, ok := e.Right.(*where.ExprList); !ok {
			return nil, srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("right side must be a value list, got %s", describe(e.Right)))
		}
		return t.apply(queries, col, e.Op, e.Right)
	default:
		return t.apply(queries, col, e.Op, e.Right)
	}
}

// in rewrites "col IN (v1, ..., vn)" to "col = v1 OR ... OR col = vn".
func (t *Translator) in(queries QuerySet, col string, e *where.BinaryExpr) (QuerySet, error) {
	list, ok := e.Right.(*where.ExprList)
	if !ok {
		return nil, srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("right side must be a value list, got %s", describe(e.Right)))
	}

	sets := make([]QuerySet, 0, len(list.Values))
	for _, v := range list.Values {
		qs, err := t.apply(queries, col, where.Equal, v)
		if err != nil {
			return nil, err
		}
		sets = append(sets, qs)
	}
	return concat(sets...), nil
}

// like rewrites an exact or prefix LIKE pattern into equality or a
// half-open range [prefix, successor(prefix)).
func (t *Translator) like(queries QuerySet, col string, e *where.BinaryExpr) (QuerySet, error) {
	s, ok := e.Right.(*where.StringValue)
	if !ok {
		return nil, srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("pattern must be a string literal, got %s", describe(e.Right)))
	}

	pattern := DecomposeLike(s.Value)
	switch pattern.Kind {
	case LikeEquals:
		return t.apply(queries, col, where.Equal, &where.StringValue{Value: pattern.Text})
	case LikeBeginsWith:
		lower, err := t.apply(queries, col, where.GreaterOrEqual, &where.StringValue{Value: pattern.Text})
		if err != nil {
			return nil, err
		}
		return t.apply(lower, col, where.Less, &where.StringValue{Value: t.successor(pattern.Text)})
	default:
		return nil, srvErrors.NewUnsupportedLikeError(s.Value, pattern.Kind.String())
	}
}

// between rewrites "col BETWEEN lo AND hi" to "col >= lo AND col <= hi".
func (t *Translator) between(queries QuerySet, col string, e *where.BinaryExpr) (QuerySet, error) {
	list, ok := e.Right.(*where.ExprList)
	if !ok {
		return nil, srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("right side must be a value list, got %s", describe(e.Right)))
	}
	if len(list.Values) != 2 {
		return nil, srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("expected 2 values, got %d", len(list.Values)))
	}

	lower, err := t.apply(queries, col, where.GreaterOrEqual, list.Values[0])
	if err != nil {
		return nil, err
	}
	return t.apply(lower, col, where.LessOrEqual, list.Values[1])
}

func columnOf(e *where.BinaryExpr) (string, error) {
	col, ok := e.Left.(*where.ColumnRef)
	if !ok {
		return "", srvErrors.NewShapeError(e.Op.String(), fmt.Sprintf("left side must be a column reference, got %s", describe(e.Left)))
	}
	return col.Column, nil
}
