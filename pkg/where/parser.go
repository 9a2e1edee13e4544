package where

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ParseError is the type of error returned by Parse.
type ParseError struct {
	// Source column position where the error occurred.
	Position int
	// Error message.
	Message string
}

// Error returns a formatted version of the error, including the position.
func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Position, e.Message)
}

// IsParseError reports whether err or any error it wraps is a ParseError.
func IsParseError(err error) bool {
	var e ParseError
	return errors.As(err, &e)
}

type parser struct {
	lexer *lexer
	pos   int    // position of last token (tok)
	tok   Token  // last lexed token
	val   string // string value of last token (or "")
}

// Parse uses panic/recover internally so recursive-descent methods can
// signal errors without threading (Node, error) through every call.
// ParseError panics are caught here and returned as normal errors;
// any other panic (bug) is re-raised.
func Parse(src []byte) (node Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(ParseError); ok {
				node = nil
				err = pe
			} else {
				panic(r)
			}
		}
	}()

	p := parser{lexer: newLexer(src)}
	p.next()

	node = p.expression()
	p.expect(eol)

	return node, err
}

// expression parses an OR expression.
//
// term ( "or" term )*
func (p *parser) expression() Node {
	expr := p.term()

	for p.matches(or) {
		p.next()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Op: Or, Right: right}
	}

	return expr
}

// term parses an AND expression.
//
// factor ( "and" factor )*
func (p *parser) term() Node {
	expr := p.factor()

	for p.matches(and) {
		p.next()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Op: And, Right: right}
	}

	return expr
}

// factor parses a single predicate or grouped expression.
//
// predicate | "(" expression ")"
func (p *parser) factor() Node {
	if p.matches(lbracket) {
		p.next()
		expr := p.expression()
		p.expect(rbracket)
		p.next()
		return expr
	}

	return p.predicate()
}

// predicate parses a comparison or a bare column reference.
func (p *parser) predicate() Node {
	p.expect(identifier)
	left := &ColumnRef{Column: p.val}
	p.next()

	switch {
	case p.matches(eol, and, or, rbracket):
		return left
	case p.matches(is):
		p.next()
		if p.matches(not) {
			p.next()
			return &BinaryExpr{Left: left, Op: Not, Right: p.value()}
		}
		return &BinaryExpr{Left: left, Op: Is, Right: p.value()}
	case p.matches(not):
		return p.negated(left)
	case p.matches(in):
		p.next()
		return &BinaryExpr{Left: left, Op: In, Right: p.list()}
	case p.matches(like):
		p.next()
		return &BinaryExpr{Left: left, Op: Like, Right: p.stringValue()}
	case p.matches(between):
		p.next()
		lo := p.value()
		p.expect(and)
		p.next()
		hi := p.value()
		return &BinaryExpr{Left: left, Op: Between, Right: &ExprList{Values: []Value{lo, hi}}}
	case p.matches(contains):
		p.next()
		if p.matches(identifier) && strings.EqualFold(p.val, "any") {
			p.next()
			return &BinaryExpr{Left: left, Op: ContainsAny, Right: p.list()}
		}
		return &BinaryExpr{Left: left, Op: Contains, Right: p.value()}
	case p.matches(containsAny):
		p.next()
		return &BinaryExpr{Left: left, Op: ContainsAny, Right: p.list()}
	}

	op, ok := comparisonOps[p.tok]
	if !ok {
		panic(p.errorf("expected operator instead of %s", p.tok))
	}
	p.next()

	return &BinaryExpr{Left: left, Op: op, Right: p.value()}
}

// negated parses "NOT IN", "NOT LIKE" and "NOT CONTAINS". None of them has a
// native filter; they are kept as NOT nodes so translation can reject them.
func (p *parser) negated(left *ColumnRef) Node {
	p.next()
	switch {
	case p.matches(in):
		p.next()
		return &BinaryExpr{Left: left, Op: Not, Right: p.list()}
	case p.matches(like):
		p.next()
		return &BinaryExpr{Left: left, Op: Not, Right: p.stringValue()}
	case p.matches(contains):
		p.next()
		return &BinaryExpr{Left: left, Op: NotContains, Right: p.value()}
	default:
		panic(p.errorf("expected in, like or contains after not instead of %s", p.tok))
	}
}

// list parses a parenthesised, comma separated list of values.
//
// "(" value ( "," value )* ")"
func (p *parser) list() *ExprList {
	p.expect(lbracket)
	p.next()

	values := []Value{p.value()}
	for p.matches(comma) {
		p.next()
		values = append(values, p.value())
	}

	p.expect(rbracket)
	p.next()

	return &ExprList{Values: values}
}

func (p *parser) stringValue() Value {
	p.expect(stringLit)
	return p.value()
}

// value parses a literal (string, number, boolean or null).
func (p *parser) value() Value {
	var v Value

	switch p.tok {
	case stringLit:
		v = &StringValue{Value: p.val}
	case number:
		v = newNumberValue(p.pos, p.val)
	case boolean:
		v = &BoolValue{Value: strings.EqualFold(p.val, "true")}
	case null:
		v = &NullValue{}
	default:
		panic(p.errorf("expected value instead of %s", p.tok))
	}

	p.next()
	return v
}

// next parses the next token into p.tok.
func (p *parser) next() {
	p.pos, p.tok, p.val = p.lexer.Scan()
	if p.tok == illegal {
		panic(p.errorf("%s", p.val))
	}
}

// matches returns true if current token matches one of the given tokens.
func (p *parser) matches(tokens ...Token) bool {
	return slices.Contains(tokens, p.tok)
}

// expect panics if current token is not the expected token.
func (p *parser) expect(tok Token) {
	if p.tok != tok {
		panic(p.errorf("expected %s instead of %s", tok, p.tok))
	}
}

// errorf formats an error with the current position.
func (p *parser) errorf(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	return ParseError{p.pos, message}
}
