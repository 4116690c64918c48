package taskform

import (
	"errors"
	"fmt"
)

// Error kinds. Every assembly failure is a *FieldError wrapping one of these.
var (
	ErrEmptyName        = errors.New("value is required")
	ErrFieldNotFound    = errors.New("no matching entry")
	ErrInvalidNumber    = errors.New("not a positive integer")
	ErrInvalidDate      = errors.New("not a dd/mm/yyyy date")
	ErrInvalidDateRange = errors.New("end date is before start date")
)

// Field names a form input.
type Field string

const (
	FieldName      Field = "name"
	FieldProject   Field = "project"
	FieldEmployee  Field = "employee"
	FieldStatus    Field = "status"
	FieldHours     Field = "hours"
	FieldStartDate Field = "startDate"
	FieldEndDate   Field = "endDate"
)

// FieldError reports which form field failed and why.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field Field, value string, kind error) error {
	return &FieldError{Field: field, Value: value, Err: kind}
}
