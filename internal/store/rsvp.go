package store

import (
	"context"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
)

// RsvpStore defines the interface for RSVP entry persistence.
// Entries are keyed by player ID; there is at most one entry per ID.
type RsvpStore interface {
	// Put stores entry under entry.Player.ID, replacing any existing entry.
	// It returns the replaced entry, or nil if the ID was not present.
	// Returns a *StoreError wrapping ErrInvalidEntity if the entry is nil
	// or has no player ID, in which case nothing is stored.
	Put(ctx context.Context, entry *domain.RsvpEntry) (*domain.RsvpEntry, error)

	// Get retrieves the entry for a player ID.
	// Returns ErrRsvpNotFound if the player has not responded.
	Get(ctx context.Context, playerID string) (*domain.RsvpEntry, error)

	// List returns every stored entry in a deterministic order.
	// Returns an empty slice if the store is empty.
	List(ctx context.Context) ([]*domain.RsvpEntry, error)
}
