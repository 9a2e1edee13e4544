// Package errors provides custom error types for whereql.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ ShapeError               │ 400    │ Operand has wrong node type/arity   │
//	│ UnsupportedError         │ 400    │ Construct has no store equivalent   │
//	│ UnknownOperatorError     │ 400    │ Operator missing from the table     │
//	│ InvalidFieldError        │ 400    │ Field name cannot be addressed      │
//	│ ResourceNotFoundError    │ 404    │ Requested resource doesn't exist    │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// # Translation errors
//
// ShapeError, UnsupportedError and UnknownOperatorError are raised while a
// WHERE expression is compiled into store filters. They abort the whole
// translation; no partial query set is ever returned.
//
// Constructors:
//   - NewShapeError(operator, message string)
//   - NewUnsupportedError(construct string)
//   - NewUnsupportedOperatorError(operator string) - NOT / NOT CONTAINS
//   - NewUnsupportedLikeError(pattern, shape string) - suffix/substring LIKE
//   - NewUnknownOperatorError(operator string)
//
// IsTranslationError groups the three so callers can reject the query:
//
//	if errors.IsTranslationError(err) {
//	    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	}
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	wrapped := fmt.Errorf("translate: %w", errors.NewUnknownOperatorError("~"))
//	errors.IsUnknownOperatorError(wrapped) // returns true
package errors
