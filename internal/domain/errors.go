// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidPlayer is returned when a player is missing or has no ID.
	ErrInvalidPlayer = errors.New("Player must have a valid ID")

	// ErrInvalidStatus is returned when an RSVP status is not one of the
	// enumerated values.
	ErrInvalidStatus = errors.New("invalid RSVP status. Must be one of: Yes, No, Maybe")
)

// IsValidationError reports whether err is one of the domain validation
// errors, possibly wrapped.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPlayer) || errors.Is(err, ErrInvalidStatus)
}
