package docquery

import (
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/where"
)

// MapOperator maps a comparison operator of the WHERE tree to the store
// operator implementing it.
//
//	=, IS           -> ==
//	<, <=, >, >=    -> same
//	CONTAINS        -> array-contains
//	CONTAINS-ANY    -> array-contains-any
//	NOT, NOT CONTAINS -> unsupported
//
// Every other operator, including the not-equal spellings that the
// Condition Applier rewrites before mapping, is unknown.
func MapOperator(op where.Operator) (FilterOperator, error) {
	switch op {
	case where.Equal, where.Is:
		return OpEqual, nil
	case where.Less:
		return OpLess, nil
	case where.LessOrEqual:
		return OpLessOrEqual, nil
	case where.Greater:
		return OpGreater, nil
	case where.GreaterOrEqual:
		return OpGreaterOrEqual, nil
	case where.Contains:
		return OpArrayContains, nil
	case where.ContainsAny:
		return OpArrayContainsAny, nil
	case where.Not, where.NotContains:
		return "", srvErrors.NewUnsupportedOperatorError(op.String())
	default:
		return "", srvErrors.NewUnknownOperatorError(op.String())
	}
}
