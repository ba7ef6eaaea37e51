// Package errors provides standardized error types for dataset
// operations. It defines CleaningError for consistent error handling
// across the public API, with operation context and error wrapping
// support.
package errors

import (
	"fmt"
)

// CleaningError represents standardized errors across all profiling and
// cleaning operations.
type CleaningError struct {
	Op      string // Operation name (e.g., "HandleMissing", "HandleOutliers")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface.
func (e *CleaningError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support.
func (e *CleaningError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is().
func (e *CleaningError) Is(target error) bool {
	if ce, ok := target.(*CleaningError); ok {
		return e.Op == ce.Op && e.Column == ce.Column && e.Message == ce.Message
	}
	return false
}

// Common error constructors for consistent error creation

// NewColumnNotFoundError creates an error for operations on non-existent columns.
func NewColumnNotFoundError(op, column string) *CleaningError {
	return &CleaningError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewInvalidInputError creates an error for invalid operation inputs.
func NewInvalidInputError(op, message string) *CleaningError {
	return &CleaningError{
		Op:      op,
		Message: message,
	}
}

// NewUnsupportedTypeError creates an error for operations applied to a
// column of the wrong type.
func NewUnsupportedTypeError(op, column, typeName string) *CleaningError {
	return &CleaningError{
		Op:      op,
		Column:  column,
		Message: fmt.Sprintf("unsupported column type: %s", typeName),
	}
}

// NewUnknownStrategyError creates an error for unrecognized strategy or
// method names. Strategy names form a closed set; an unknown name is a
// configuration error, not a silent no-op.
func NewUnknownStrategyError(op, strategy string) *CleaningError {
	return &CleaningError{
		Op:      op,
		Message: fmt.Sprintf("unknown strategy: %q", strategy),
	}
}

// NewValidationError creates an error for input validation failures.
func NewValidationError(op, column, message string) *CleaningError {
	return &CleaningError{
		Op:      op,
		Column:  column,
		Message: message,
	}
}

// NewInternalError creates an error for internal operation failures.
func NewInternalError(op string, cause error) *CleaningError {
	return &CleaningError{
		Op:      op,
		Message: "internal error occurred",
		Cause:   cause,
	}
}

// Predefined error variables for common cases
var (
	// ErrMismatchedLength indicates column length mismatches.
	ErrMismatchedLength = &CleaningError{
		Op:      "validation",
		Message: "columns must have the same length",
	}

	// ErrDuplicateColumn indicates duplicate column names in a dataset.
	ErrDuplicateColumn = &CleaningError{
		Op:      "validation",
		Message: "column names must be unique",
	}
)
