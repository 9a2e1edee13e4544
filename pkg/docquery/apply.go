package docquery

import (
	"github.com/kubev2v/whereql/pkg/where"
)

// Apply narrows every query of queries by (field op value) and returns the
// resulting set. The input set is never modified.
func Apply(queries QuerySet, field string, op where.Operator, value where.Node) (QuerySet, error) {
	return defaultTranslator.apply(queries, field, op, value)
}

func (t *Translator) apply(queries QuerySet, field string, op where.Operator, value where.Node) (QuerySet, error) {
	if op.IsNotEqual() {
		// no native not-equal: a boolean flips to equality, anything else
		// becomes "less than OR greater than"
		if b, ok := value.(*where.BoolValue); ok {
			return t.apply(queries, field, where.Equal, &where.BoolValue{Value: !b.Value})
		}

		less, err := t.apply(queries, field, where.Less, value)
		if err != nil {
			return nil, err
		}
		greater, err := t.apply(queries, field, where.Greater, value)
		if err != nil {
			return nil, err
		}
		return concat(less, greater), nil
	}

	filterOp, err := MapOperator(op)
	if err != nil {
		return nil, err
	}

	var native any
	if list, ok := value.(*where.ExprList); ok && op == where.ContainsAny {
		native, err = t.nativeList(list)
	} else {
		native, err = t.toNative(value)
	}
	if err != nil {
		return nil, err
	}

	out := make(QuerySet, 0, len(queries))
	for _, q := range queries {
		out = append(out, q.WithFilter(field, filterOp, native))
	}
	return out, nil
}

// nativeList converts the operand of array-contains-any.
func (t *Translator) nativeList(list *where.ExprList) ([]any, error) {
	values := make([]any, 0, len(list.Values))
	for _, v := range list.Values {
		native, err := t.toNative(v)
		if err != nil {
			return nil, err
		}
		values = append(values, native)
	}
	return values, nil
}

// concat returns a new set holding the queries of every set in order.
func concat(sets ...QuerySet) QuerySet {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(QuerySet, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
