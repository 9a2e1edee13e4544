// Package docquery compiles a WHERE expression tree into filter queries for
// a document store whose filter algebra only knows single-field equality,
// single-field ranges, array membership and conjunction within one query.
//
// Everything else is rewritten into that algebra:
//
//	┌─────────────────────────┬──────────────────────────────────────────────┐
//	│ WHERE construct         │ Query set                                    │
//	├─────────────────────────┼──────────────────────────────────────────────┤
//	│ A AND B                 │ translate(translate(qs, A), B)               │
//	│ A OR B                  │ translate(qs, A) ++ translate(qs, B)         │
//	│ col IN (v1..vn)         │ one query per value: col == vi               │
//	│ col LIKE 'text'         │ col == "text"                                │
//	│ col LIKE 'text%'        │ col >= "text" AND col < Successor("text")    │
//	│ col LIKE '%text' / '%t%'│ error: unsupported                           │
//	│ col BETWEEN lo AND hi   │ col >= lo AND col <= hi                      │
//	│ col != true             │ col == false                                 │
//	│ col != v                │ (col < v) ++ (col > v)                       │
//	│ col                     │ col == true                                  │
//	│ col CONTAINS v          │ col array-contains v                         │
//	│ col CONTAINS-ANY (..)   │ col array-contains-any [..]                  │
//	│ NOT, NOT CONTAINS       │ error: unsupported                           │
//	└─────────────────────────┴──────────────────────────────────────────────┘
//
// The result is a QuerySet: the disjunction of its queries. Executing each
// query and concatenating the rows is left to the caller; rows matched by
// more than one query are not deduplicated.
//
// A store may allow range filters on a single field per query only. This
// package does not check it; "a > 1 AND b < 2" yields one query with
// ranges on two fields.
//
// # Query
//
// The store is reached only through the Query interface:
//
//	type Query interface {
//	    WithFilter(field string, op FilterOperator, value any) Query
//	}
//
// WithFilter must return a new Query. OR and IN branches refine the same
// incoming queries, so an implementation that mutates its receiver would
// leak filters between sibling branches. FilterQuery is an in-memory
// implementation that records the filters.
//
// # Usage
//
//	node, err := where.Parse([]byte("name LIKE 'Jo%' OR rating != 3"))
//	if err != nil {
//	    return err
//	}
//	qs, err := docquery.TranslateWhere(docquery.NewQuerySet(docquery.NewFilterQuery()), node)
//	// qs holds three queries:
//	//   name >= "Jo" AND name < "Jp"
//	//   rating < 3
//	//   rating > 3
package docquery
