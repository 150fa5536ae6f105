package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound covers both absent records and records owned by a
	// different user.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registration hits an existing email.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidCredentials is the single error for unknown email and wrong
	// password alike, to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is the typed outcome of validating an input DTO.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, len(e))
	for i, ve := range e {
		messages[i] = ve.Error()
	}
	return strings.Join(messages, "; ")
}

// AsValidationErrors unwraps err into a ValidationErrors list if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
