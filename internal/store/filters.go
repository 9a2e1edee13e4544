package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
)

// fieldPattern restricts field names to dotted identifiers so they can be
// inlined into JSON paths.
var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

var comparisonSql = map[docquery.FilterOperator]string{
	docquery.OpEqual:          "=",
	docquery.OpLess:           "<",
	docquery.OpLessOrEqual:    "<=",
	docquery.OpGreater:        ">",
	docquery.OpGreaterOrEqual: ">=",
}

func jsonPath(field string) (string, error) {
	if !fieldPattern.MatchString(field) {
		return "", srvErrors.NewInvalidFieldError(field)
	}
	return "$." + field, nil
}

// filterSql renders one filter as a predicate over the doc column.
//
// Values only compare with values of the same JSON type: a string filter
// never matches a number. Missing fields never match.
func filterSql(f docquery.Filter) (sq.Sqlizer, error) {
	path, err := jsonPath(f.Field)
	if err != nil {
		return nil, err
	}

	switch f.Operator {
	case docquery.OpArrayContains:
		return arrayContainsSql(path, f.Value)
	case docquery.OpArrayContainsAny:
		values, ok := f.Value.([]any)
		if !ok {
			return nil, srvErrors.NewShapeError(string(f.Operator), fmt.Sprintf("expected a list of values, got %T", f.Value))
		}
		anyOf := sq.Or{}
		for _, v := range values {
			pred, err := arrayContainsSql(path, v)
			if err != nil {
				return nil, err
			}
			anyOf = append(anyOf, pred)
		}
		if len(anyOf) == 0 {
			return sq.Expr("FALSE"), nil
		}
		return anyOf, nil
	}

	op, ok := comparisonSql[f.Operator]
	if !ok {
		return nil, srvErrors.NewUnknownOperatorError(string(f.Operator))
	}

	switch v := f.Value.(type) {
	case string:
		if !utf8.ValidString(v) {
			// not bindable as VARCHAR; BLOB ordering is the same byte order
			return sq.Expr(fmt.Sprintf("(json_type(doc, '%[1]s') = 'VARCHAR' AND encode(json_extract_string(doc, '%[1]s')) %[2]s ?)", path, op), []byte(v)), nil
		}
		return sq.Expr(fmt.Sprintf("(json_type(doc, '%[1]s') = 'VARCHAR' AND json_extract_string(doc, '%[1]s') %[2]s ?)", path, op), v), nil
	case bool:
		// 'false' < 'true' matches boolean ordering
		return sq.Expr(fmt.Sprintf("(json_type(doc, '%[1]s') = 'BOOLEAN' AND json_extract_string(doc, '%[1]s') %[2]s ?)", path, op), strconv.FormatBool(v)), nil
	case nil:
		if f.Operator != docquery.OpEqual {
			return sq.Expr("FALSE"), nil
		}
		return sq.Expr(fmt.Sprintf("(json_type(doc, '%s') = 'NULL')", path)), nil
	}

	n, ok := toFloat(f.Value)
	if !ok {
		return nil, srvErrors.NewShapeError(string(f.Operator), fmt.Sprintf("unsupported value type %T", f.Value))
	}
	return sq.Expr(fmt.Sprintf("(json_type(doc, '%[1]s') IN ('BIGINT', 'UBIGINT', 'HUGEINT', 'DOUBLE') AND TRY_CAST(json_extract_string(doc, '%[1]s') AS DOUBLE) %[2]s ?)", path, op), n), nil
}

func arrayContainsSql(path string, value any) (sq.Sqlizer, error) {
	if n, ok := toFloat(value); ok {
		value = n
	}
	literal, err := jsonLiteral(value)
	if err != nil {
		return nil, err
	}
	return sq.Expr(fmt.Sprintf("(json_type(doc, '%[1]s') = 'ARRAY' AND list_contains(json_extract(doc, '%[1]s[*]'), CAST(? AS JSON)))", path), literal), nil
}

func jsonLiteral(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// FindOption modifies the SELECT of a Find call.
type FindOption func(sq.SelectBuilder) sq.SelectBuilder

// WithLimit sets the LIMIT clause.
func WithLimit(limit uint64) FindOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if limit == 0 {
			return b
		}
		return b.Limit(limit)
	}
}
