package errors

import (
	"errors"
	"fmt"
)

// ShapeError indicates an operand of a WHERE expression has the wrong node
// type or arity (e.g. IN without a value list, BETWEEN with three values).
type ShapeError struct {
	Operator string
	Message  string
}

func NewShapeError(operator, message string) *ShapeError {
	return &ShapeError{Operator: operator, Message: message}
}

func (e *ShapeError) Error() string {
	if e.Operator == "" {
		return fmt.Sprintf("invalid where clause: %s", e.Message)
	}
	return fmt.Sprintf("invalid where clause: %s: %s", e.Operator, e.Message)
}

// IsShapeError checks if the error is a ShapeError.
func IsShapeError(err error) bool {
	var e *ShapeError
	return errors.As(err, &e)
}

// UnsupportedError indicates a construct the target store cannot express.
type UnsupportedError struct {
	Construct string
}

func NewUnsupportedError(construct string) *UnsupportedError {
	return &UnsupportedError{Construct: construct}
}

func NewUnsupportedOperatorError(operator string) *UnsupportedError {
	return NewUnsupportedError(fmt.Sprintf("operator %s", operator))
}

func NewUnsupportedLikeError(pattern, shape string) *UnsupportedError {
	return NewUnsupportedError(fmt.Sprintf("LIKE pattern %q (%s match)", pattern, shape))
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s", e.Construct)
}

// IsUnsupportedError checks if the error is an UnsupportedError.
func IsUnsupportedError(err error) bool {
	var e *UnsupportedError
	return errors.As(err, &e)
}

// UnknownOperatorError indicates an operator token absent from the operator table.
type UnknownOperatorError struct {
	Operator string
}

func NewUnknownOperatorError(operator string) *UnknownOperatorError {
	return &UnknownOperatorError{Operator: operator}
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %s", e.Operator)
}

// IsUnknownOperatorError checks if the error is an UnknownOperatorError.
func IsUnknownOperatorError(err error) bool {
	var e *UnknownOperatorError
	return errors.As(err, &e)
}

// IsTranslationError reports whether err rejects the query itself rather
// than signalling an infrastructure failure.
func IsTranslationError(err error) bool {
	return IsShapeError(err) || IsUnsupportedError(err) || IsUnknownOperatorError(err)
}

// InvalidFieldError indicates a field name the store cannot address.
type InvalidFieldError struct {
	Field string
}

func NewInvalidFieldError(field string) *InvalidFieldError {
	return &InvalidFieldError{Field: field}
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field name: %q", e.Field)
}

func IsInvalidFieldError(err error) bool {
	var e *InvalidFieldError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, ID: id}
}

func NewCollectionNotFoundError(name string) *ResourceNotFoundError {
	return NewResourceNotFoundError("collection", name)
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// InvalidDocumentError indicates a document body that cannot be stored.
type InvalidDocumentError struct {
	err error
}

func NewInvalidDocumentError(err error) *InvalidDocumentError {
	return &InvalidDocumentError{err: err}
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document: %v", e.err)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.err
}

func IsInvalidDocumentError(err error) bool {
	var e *InvalidDocumentError
	return errors.As(err, &e)
}
