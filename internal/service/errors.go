package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for specific error conditions. Validation
// failures surface as domain.ErrInvalidPlayer and domain.ErrInvalidStatus.
var (
	// ErrRsvpNotFound indicates that the player has not responded.
	ErrRsvpNotFound = errors.New("rsvp not found")
)

// ServiceError wraps errors from the RSVP service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "add_or_update_rsvp")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rsvp service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("rsvp service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// It returns known sentinel errors directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if domain.IsValidationError(err) || errors.Is(err, ErrRsvpNotFound) {
		return err
	}

	// Store-level sentinels are mapped to service-level ones
	if errors.Is(err, store.ErrRsvpNotFound) {
		return ErrRsvpNotFound
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
