// Package apperr defines the sentinel errors shared by the storage, service
// and HTTP layers. Callers match them with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Storage-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already in use")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ValidationError carries the per-field messages produced when a request
// body is rejected before it reaches the service layer.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func Validation(fields ...string) error {
	return &ValidationError{Fields: fields}
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Fields: []string{fmt.Sprintf(format, args...)}}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
