package service

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("please fill all fields")

// ValidationError reports a required field that is missing or not a number.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func missing(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func notNumeric(field string) error {
	return &ValidationError{Field: field, Reason: "must be a number"}
}
