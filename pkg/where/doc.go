// Package where parses the WHERE clause of a SQL-like query into an
// expression tree.
//
// # Grammar
//
//	--- PARSER RULES ---
//
//	expression  : term ( "or" term )* ;
//	term        : factor ( "and" factor )* ;
//
//	factor      : predicate
//	            | "(" expression ")" ;
//
//	predicate   : IDENTIFIER
//	            | IDENTIFIER ( "=" | "==" | "is" | "!=" | "<>" | "<" | "<=" | ">" | ">=" ) value
//	            | IDENTIFIER "is" "not" value
//	            | IDENTIFIER [ "not" ] "in" list
//	            | IDENTIFIER [ "not" ] "like" STRING
//	            | IDENTIFIER "between" value "and" value
//	            | IDENTIFIER [ "not" ] "contains" value
//	            | IDENTIFIER ( "contains" "any" | "contains_any" ) list ;
//
//	list        : "(" value ( "," value )* ")" ;
//	value       : STRING | NUMBER | BOOLEAN | NULL ;
//
//	--- LEXER RULES ---
//
//	IDENTIFIER  : [a-zA-Z_][a-zA-Z0-9_]* ( "." [a-zA-Z_][a-zA-Z0-9_]* )* ;
//	STRING      : "'" ( "''" | . )*? "'" | "\"" ( "\"\"" | . )*? "\"" ;
//	NUMBER      : "-"? [0-9]+ ( "." [0-9]* )? ( [eE] [+-]? [0-9]+ )? ;
//	BOOLEAN     : "true" | "false" ;
//	NULL        : "null" ;
//
// Keywords are case-insensitive. A bare IDENTIFIER is a column used as a
// predicate ("WHERE is_active"). Negated forms are parsed into NOT and
// NOT CONTAINS nodes; it is up to the consumer of the tree to reject them.
package where
