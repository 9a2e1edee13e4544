package docquery

import (
	"fmt"

	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/where"
)

// ToNative converts a literal node into the store's scalar representation:
// string, float64, bool or nil.
func ToNative(node where.Node) (any, error) {
	switch v := node.(type) {
	case *where.StringValue:
		return v.Value, nil
	case *where.NumberValue:
		return v.Value, nil
	case *where.BoolValue:
		return v.Value, nil
	case *where.NullValue:
		return nil, nil
	default:
		return nil, srvErrors.NewShapeError("", fmt.Sprintf("expected a literal value instead of %s", describe(node)))
	}
}

func describe(node where.Node) string {
	switch n := node.(type) {
	case nil:
		return "nothing"
	case *where.ColumnRef:
		return fmt.Sprintf("column %s", n.Column)
	case *where.BinaryExpr:
		return fmt.Sprintf("%s expression", n.Op)
	case *where.ExprList:
		return "value list"
	default:
		return fmt.Sprintf("%T", node)
	}
}
