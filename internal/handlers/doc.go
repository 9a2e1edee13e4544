// Package handlers implements the HTTP API of whereql.
//
// Handlers validate requests, call the query service and map its errors to
// status codes. All routes live under /api/v1.
//
//	┌────────┬────────────────────────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint                           │ Description                          │
//	├────────┼────────────────────────────────────┼──────────────────────────────────────┤
//	│ POST   │ /translate                         │ Translate a WHERE clause to filters  │
//	│ GET    │ /collections                       │ List collections                     │
//	│ POST   │ /collections/{name}/query          │ Run a WHERE clause (JSON body)       │
//	│ GET    │ /collections/{name}/documents      │ Run a WHERE clause (?where=&limit=)  │
//	│ POST   │ /collections/{name}/documents      │ Store a JSON object or array         │
//	│ GET    │ /collections/{name}/documents/{id} │ Get one document                     │
//	│ DELETE │ /collections/{name}/documents/{id} │ Delete one document                  │
//	└────────┴────────────────────────────────────┴──────────────────────────────────────┘
//
// POST /translate
//
// Request:
//
//	{ "where": "age BETWEEN 18 AND 30 OR name LIKE 'Jo%'" }
//
// Response:
//
//	{
//	    "where": "age BETWEEN 18 AND 30 OR name LIKE 'Jo%'",
//	    "queries": [
//	        [{"field": "age", "op": ">=", "value": 18}, {"field": "age", "op": "<=", "value": 30}],
//	        [{"field": "name", "op": ">=", "value": "Jo"}, {"field": "name", "op": "<", "value": "Jp"}]
//	    ]
//	}
//
// Query responses hold one entry in "queries" per executed query and the
// concatenation of their documents. A document matched by two queries of
// the same clause is returned twice.
//
// Errors use the format { "error": "message" }:
//
//	┌───────────────────────────────────────────────┬────────┐
//	│ Error                                         │ Status │
//	├───────────────────────────────────────────────┼────────┤
//	│ Parse error, translation error, invalid field │ 400    │
//	│ Invalid document body                         │ 400    │
//	│ ResourceNotFoundError                         │ 404    │
//	│ Anything else                                 │ 500    │
//	└───────────────────────────────────────────────┴────────┘
package handlers
