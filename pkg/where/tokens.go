package where

type Token int

const (
	illegal Token = iota
	eol
	and
	or
	not
	in
	like
	between
	contains
	containsAny
	is
	equal
	notEqual
	lessGreater
	less
	lte
	greater
	gte
	lbracket
	rbracket
	comma
	stringLit
	number
	boolean
	null
	identifier
)

var tokenNames = map[Token]string{
	illegal:     "illegal",
	eol:         "eol",
	and:         "and",
	or:          "or",
	not:         "not",
	in:          "in",
	like:        "like",
	between:     "between",
	contains:    "contains",
	containsAny: "containsAny",
	is:          "is",
	equal:       "equal",
	notEqual:    "notEqual",
	lessGreater: "lessGreater",
	less:        "less",
	lte:         "lte",
	greater:     "greater",
	gte:         "gte",
	lbracket:    "lbracket",
	rbracket:    "rbracket",
	comma:       "comma",
	stringLit:   "stringLit",
	number:      "number",
	boolean:     "boolean",
	null:        "null",
	identifier:  "identifier",
}

func (t Token) String() string {
	return tokenNames[t]
}

var keywords = map[string]Token{
	"and":          and,
	"or":           or,
	"not":          not,
	"in":           in,
	"like":         like,
	"between":      between,
	"contains":     contains,
	"contains_any": containsAny,
	"is":           is,
	"true":         boolean,
	"false":        boolean,
	"null":         null,
}

// comparisonOps maps comparison tokens to the operator they produce.
var comparisonOps = map[Token]Operator{
	equal:       Equal,
	is:          Is,
	notEqual:    NotEqual,
	lessGreater: LessGreater,
	less:        Less,
	lte:         LessOrEqual,
	greater:     Greater,
	gte:         GreaterOrEqual,
}
