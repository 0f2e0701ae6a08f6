// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error produced while validating a
// curriculum request.
var ErrValidation = errors.New("validation failed")

// MissingFieldError is returned when a required field is absent or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrValidation }

// InvalidFieldError is returned when a field holds a value outside its
// allowed set.
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s has unsupported value %q", e.Field, e.Value)
}

func (e *InvalidFieldError) Unwrap() error { return ErrValidation }
