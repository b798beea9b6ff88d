package errors

import (
	stderrors "errors"
	"fmt"
)

// MissingColumnError reports a required field that is absent from an input row.
// It is fatal for the whole batch.
type MissingColumnError struct {
	Column string
	// Line is the 1-based line of the source file, or 0 when unknown.
	Line int
	// Index is the position of the reading in the batch, or -1 when unknown.
	Index int
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("missing column %q on line %d", e.Column, e.Line)
	case e.Index >= 0:
		return fmt.Sprintf("missing column %q in reading %d", e.Column, e.Index)
	default:
		return fmt.Sprintf("missing column %q", e.Column)
	}
}

// NewMissingColumnError creates a MissingColumnError for a source line
func NewMissingColumnError(column string, line int) *MissingColumnError {
	return &MissingColumnError{Column: column, Line: line, Index: -1}
}

// ParseError reports a field that could not be converted to its type.
type ParseError struct {
	Column string
	Line   int
	Value  string
	Cause  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s value %q on line %d: %v", e.Column, e.Value, e.Line, e.Cause)
}

// Unwrap returns the underlying conversion error
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsMissingColumn reports whether err carries a MissingColumnError
func IsMissingColumn(err error) bool {
	var mc *MissingColumnError
	return stderrors.As(err, &mc)
}

// As is errors.As re-exported for callers that import this package as errors
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is errors.Is re-exported
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
