package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/rsvp-tracker/internal/domain"
)

// Event types emitted by the RSVP service.
const (
	TypeRsvpAdded   = "rsvp.added"
	TypeRsvpUpdated = "rsvp.updated"
)

// RsvpEvent records that a player's response was stored.
type RsvpEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is TypeRsvpAdded for a first response, TypeRsvpUpdated otherwise
	Type string `json:"type"`

	PlayerID   string            `json:"player_id"`
	PlayerName string            `json:"player_name"`
	Status     domain.RsvpStatus `json:"status"`

	// PreviousStatus is empty for TypeRsvpAdded
	PreviousStatus domain.RsvpStatus `json:"previous_status,omitempty"`

	// OccurredAt equals the stored entry's UpdatedAt
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRsvpEvent builds the event describing entry replacing previous.
// A nil previous produces an "added" event.
func NewRsvpEvent(entry, previous *domain.RsvpEntry) *RsvpEvent {
	event := &RsvpEvent{
		ID:         uuid.New(),
		Type:       TypeRsvpAdded,
		PlayerID:   entry.Player.ID,
		PlayerName: entry.Player.Name,
		Status:     entry.Status,
		OccurredAt: entry.UpdatedAt,
	}
	if previous != nil {
		event.Type = TypeRsvpUpdated
		event.PreviousStatus = previous.Status
	}
	return event
}

// IsUpdate reports whether the event replaced an earlier response.
func (e *RsvpEvent) IsUpdate() bool {
	return e.Type == TypeRsvpUpdated
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *RsvpEvent) error
}

// HandlerFunc adapts an ordinary function to EventHandler.
type HandlerFunc func(ctx context.Context, event *RsvpEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *RsvpEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *RsvpEvent) error
}
