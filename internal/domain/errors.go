package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these classes onto HTTP statuses:
// ValidationError -> 400, ErrNotFound -> 404, ErrUnauthorized -> 401,
// ErrEmailTaken -> 400, everything else -> 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmailTaken   = errors.New("user already exists")
)

// ValidationError marks a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
