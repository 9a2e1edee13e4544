package where

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is the operator of a BinaryExpr.
type Operator int

const (
	And Operator = iota
	Or
	In
	Like
	Between
	Contains
	ContainsAny
	Equal
	Is
	NotEqual
	LessGreater
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
	Not
	NotContains
)

var operatorTokens = map[Operator]string{
	And:            "AND",
	Or:             "OR",
	In:             "IN",
	Like:           "LIKE",
	Between:        "BETWEEN",
	Contains:       "CONTAINS",
	ContainsAny:    "CONTAINS-ANY",
	Equal:          "=",
	Is:             "IS",
	NotEqual:       "!=",
	LessGreater:    "<>",
	Less:           "<",
	LessOrEqual:    "<=",
	Greater:        ">",
	GreaterOrEqual: ">=",
	Not:            "NOT",
	NotContains:    "NOT CONTAINS",
}

// String returns the SQL token of the operator.
func (o Operator) String() string {
	if s, ok := operatorTokens[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// IsLogical reports whether o combines two boolean sub-expressions.
func (o Operator) IsLogical() bool {
	return o == And || o == Or
}

// IsNotEqual reports whether o is one of the not-equal spellings.
func (o Operator) IsNotEqual() bool {
	return o == NotEqual || o == LessGreater
}

// Node is a node of a WHERE expression tree. Nodes are immutable once built.
type Node interface {
	String() string
	node()
}

// Value is a literal node.
type Value interface {
	Node
	value()
}

// BinaryExpr is an expression like "a = 1", "a IN (1, 2)" or "x AND y".
type BinaryExpr struct {
	Op    Operator
	Left  Node
	Right Node
}

func (*BinaryExpr) node() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op.String(), e.Right.String())
}

// ColumnRef references a document field by name. Dots address nested fields.
type ColumnRef struct {
	Column string
}

func (*ColumnRef) node() {}

func (c *ColumnRef) String() string {
	return c.Column
}

// ExprList is the parenthesised value list on the right of IN, BETWEEN and CONTAINS-ANY.
type ExprList struct {
	Values []Value
}

func (*ExprList) node() {}

func (l *ExprList) String() string {
	parts := make([]string, 0, len(l.Values))
	for _, v := range l.Values {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StringValue is a string literal.
type StringValue struct {
	Value string
}

func (*StringValue) node()  {}
func (*StringValue) value() {}

func (s *StringValue) String() string {
	return strconv.Quote(s.Value)
}

// NumberValue is a numeric literal. Literal keeps the source spelling.
type NumberValue struct {
	Value   float64
	Literal string
}

func newNumberValue(pos int, literal string) *NumberValue {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		panic(ParseError{pos, fmt.Sprintf("invalid number %q", literal)})
	}
	return &NumberValue{Value: f, Literal: literal}
}

func (*NumberValue) node()  {}
func (*NumberValue) value() {}

func (n *NumberValue) String() string {
	if n.Literal != "" {
		return n.Literal
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// BoolValue is a boolean literal (true or false).
type BoolValue struct {
	Value bool
}

func (*BoolValue) node()  {}
func (*BoolValue) value() {}

func (b *BoolValue) String() string {
	return strconv.FormatBool(b.Value)
}

// NullValue is the null literal.
type NullValue struct{}

func (*NullValue) node()  {}
func (*NullValue) value() {}

func (*NullValue) String() string {
	return "null"
}
