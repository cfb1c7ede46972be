package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Concrete sentinels below wrap one of these so the transport
// layer can map whole families with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("user not authorized")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrUserNotFound        = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrParticipantNotFound = fmt.Errorf("participant not found: %w", ErrNotFound)
	ErrCountryNotFound     = fmt.Errorf("country not found: %w", ErrNotFound)
	ErrCompetitionNotFound = fmt.Errorf("competition not found: %w", ErrNotFound)

	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)

	ErrUserExists        = fmt.Errorf("user already exists: %w", ErrConflict)
	ErrCountryExists     = fmt.Errorf("country already exists: %w", ErrConflict)
	ErrCompetitionExists = fmt.Errorf("competition already exists: %w", ErrConflict)
)

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Is lets errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Message returns the human-readable text of a wrapped sentinel, without
// the error class suffix ("participant not found: not found" becomes "participant not found").
func Message(err error) string {
	msg := err.Error()
	for _, class := range []error{ErrNotFound, ErrUnauthorized, ErrConflict} {
		msg = strings.TrimSuffix(msg, ": "+class.Error())
	}
	return msg
}
