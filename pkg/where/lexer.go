package where

import "strings"

type lexer struct {
	src     []byte
	ch      byte
	offset  int
	pos     int
	nextPos int
}

func newLexer(src []byte) *lexer {
	l := &lexer{src: src}
	l.next()

	return l
}

func (l *lexer) Scan() (int, Token, string) {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.next()
	}

	if l.ch == 0 {
		return l.pos, eol, ""
	}

	tok := illegal
	pos := l.pos
	val := ""

	ch := l.ch
	l.next()

	// keywords and identifiers
	if isIdentifierStart(ch) {
		start := l.tokenStart()
		for isIdentifierPart(l.ch) || (isDot(l.ch) && l.peekIdentifierStart()) {
			l.next()
		}
		name := string(l.src[start:l.tokenEnd()])
		if kw, ok := keywords[strings.ToLower(name)]; ok {
			return pos, kw, name
		}
		return pos, identifier, name
	}

	if isDigit(ch) || (ch == '-' && isDigit(l.ch)) {
		start := l.tokenStart()
		seenDot := false
		for isDigit(l.ch) || (l.ch == '.' && !seenDot) {
			if l.ch == '.' {
				seenDot = true
			}
			l.next()
		}
		if l.ch == 'e' || l.ch == 'E' {
			l.next()
			if l.ch == '+' || l.ch == '-' {
				l.next()
			}
			if !isDigit(l.ch) {
				return pos, illegal, "malformed exponent"
			}
			for isDigit(l.ch) {
				l.next()
			}
		}
		return pos, number, string(l.src[start:l.tokenEnd()])
	}

	switch ch {
	case '(':
		tok = lbracket
	case ')':
		tok = rbracket
	case ',':
		tok = comma
	case '=':
		tok = equal
		if l.ch == '=' {
			l.next()
		}
	case '!':
		if l.ch != '=' {
			return pos, illegal, "unexpected char"
		}
		tok = notEqual
		l.next()
	case '<':
		switch l.ch {
		case '=':
			tok = lte
			l.next()
		case '>':
			tok = lessGreater
			l.next()
		default:
			tok = less
		}
	case '>':
		switch l.ch {
		case '=':
			tok = gte
			l.next()
		default:
			tok = greater
		}
	case '"', '\'':
		// a doubled quote inside the literal is an escaped quote
		chars := make([]byte, 0, 32)
		for {
			if l.ch == 0 {
				return pos, illegal, "unclosed string"
			}
			if l.ch == ch {
				l.next()
				if l.ch != ch {
					break
				}
			}
			chars = append(chars, l.ch)
			l.next()
		}
		tok = stringLit
		val = string(chars)
	default:
		tok = illegal
		val = "unexpected char"
	}

	return pos, tok, val
}

// Load the next character into l.ch (or 0 on end of input) and update position.
func (l *lexer) next() {
	l.pos = l.nextPos
	if l.offset >= len(l.src) {
		// For last character, move offset 1 past the end as it
		// simplifies offset calculations in identifiers and numbers
		if l.ch != 0 {
			l.ch = 0
			l.offset++
			l.nextPos++
		}
		return
	}
	ch := l.src[l.offset]
	l.ch = ch
	l.nextPos++
	l.offset++
}

// peekIdentifierStart reports whether the byte after the current one starts an identifier.
func (l *lexer) peekIdentifierStart() bool {
	return l.offset < len(l.src) && isIdentifierStart(l.src[l.offset])
}

func isIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierPart(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isDot(ch byte) bool {
	return ch == '.'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// tokenStart returns the start offset of the current token.
func (l *lexer) tokenStart() int {
	return l.offset - 2
}

// tokenEnd returns the end offset of the current token.
func (l *lexer) tokenEnd() int {
	return l.offset - 1
}
