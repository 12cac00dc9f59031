package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrScheduleMismatch   = errors.New("route does not run on requested day")
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account awaiting approval")
	ErrAccountRejected    = errors.New("account rejected")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError reports a missing or malformed field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ScheduleMismatchError is returned when a booking date falls outside the route's work days
type ScheduleMismatchError struct {
	Day     DayCode
	Allowed []DayCode
}

func (e *ScheduleMismatchError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, d := range e.Allowed {
		allowed[i] = string(d)
	}
	return fmt.Sprintf("Trajet indisponible le %s. Jours disponibles: %s", e.Day, strings.Join(allowed, ", "))
}

func (e *ScheduleMismatchError) Is(target error) bool {
	return target == ErrScheduleMismatch
}
