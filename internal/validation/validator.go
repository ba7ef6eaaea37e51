// Package validation provides input validation utilities for dataset
// operations. Validators are small reusable checks for column
// existence, column types, and length consistency, combined through a
// common Validator interface.
package validation

import (
	"fmt"

	"github.com/scourdata/scour/internal/errors"
)

// Validator interface for input validation.
type Validator interface {
	Validate() error
}

// ColumnProvider interface for types that provide column information.
type ColumnProvider interface {
	HasColumn(name string) bool
	Columns() []string
	Len() int
	Width() int
}

// ColumnValidator validates column existence.
type ColumnValidator struct {
	ds      ColumnProvider
	columns []string
	op      string
}

// NewColumnValidator creates a validator for column operations.
func NewColumnValidator(ds ColumnProvider, op string, columns ...string) *ColumnValidator {
	return &ColumnValidator{
		ds:      ds,
		columns: columns,
		op:      op,
	}
}

// Validate checks that all columns exist in the dataset.
func (v *ColumnValidator) Validate() error {
	for _, column := range v.columns {
		if !v.ds.HasColumn(column) {
			return errors.NewColumnNotFoundError(v.op, column)
		}
	}
	return nil
}

// LengthValidator validates column length consistency.
type LengthValidator struct {
	expected int
	actual   int
	op       string
	context  string
}

// NewLengthValidator creates a validator for length consistency.
func NewLengthValidator(expected, actual int, op, context string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
		context:  context,
	}
}

// Validate checks that lengths match.
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		message := fmt.Sprintf("%s: expected length %d, got %d", v.context, v.expected, v.actual)
		return errors.NewValidationError(v.op, "", message)
	}
	return nil
}

// UniqueNamesValidator validates that column names are unique.
type UniqueNamesValidator struct {
	names []string
	op    string
}

// NewUniqueNamesValidator creates a validator for column name uniqueness.
func NewUniqueNamesValidator(op string, names []string) *UniqueNamesValidator {
	return &UniqueNamesValidator{names: names, op: op}
}

// Validate checks that no column name appears twice.
func (v *UniqueNamesValidator) Validate() error {
	seen := make(map[string]bool, len(v.names))
	for _, name := range v.names {
		if seen[name] {
			return errors.NewValidationError(v.op, name, "duplicate column name")
		}
		seen[name] = true
	}
	return nil
}

// CompoundValidator combines multiple validators.
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions.
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered.
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateColumns is a convenience function for column existence validation.
func ValidateColumns(ds ColumnProvider, op string, columns ...string) error {
	return NewColumnValidator(ds, op, columns...).Validate()
}

// ValidateLength is a convenience function for length validation.
func ValidateLength(expected, actual int, op, context string) error {
	return NewLengthValidator(expected, actual, op, context).Validate()
}

// ValidateUniqueNames is a convenience function for name uniqueness validation.
func ValidateUniqueNames(op string, names []string) error {
	return NewUniqueNamesValidator(op, names).Validate()
}
