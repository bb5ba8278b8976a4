package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/store"
)

// RsvpStore implements store.RsvpStore with a map keyed by player ID.
// Listing follows the order in which players first responded, so results are
// deterministic for a given sequence of writes. A single mutex guards the
// whole store.
type RsvpStore struct {
	mu      sync.RWMutex
	entries map[string]*domain.RsvpEntry
	order   []string
	logger  *slog.Logger
}

// NewRsvpStore creates an empty in-memory RSVP store.
// If logger is nil, a default logger will be used.
func NewRsvpStore(logger *slog.Logger) *RsvpStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &RsvpStore{
		entries: make(map[string]*domain.RsvpEntry),
		logger:  logger.With(slog.String("component", "memory_rsvp_store")),
	}
}

// Ensure RsvpStore implements store.RsvpStore interface
var _ store.RsvpStore = (*RsvpStore)(nil)

// Put implements store.RsvpStore.Put
func (s *RsvpStore) Put(ctx context.Context, entry *domain.RsvpEntry) (*domain.RsvpEntry, error) {
	if entry == nil {
		return nil, store.NewStoreError("rsvp", "put", "entry is nil", store.ErrInvalidEntity)
	}
	if entry.Player.ID == "" {
		return nil, store.NewStoreError("rsvp", "put", "entry has no player id", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.entries[entry.Player.ID]
	if !exists {
		s.order = append(s.order, entry.Player.ID)
	}
	s.entries[entry.Player.ID] = entry

	s.logger.DebugContext(ctx, "stored rsvp entry",
		slog.String("player_id", entry.Player.ID),
		slog.String("status", entry.Status.String()),
		slog.Bool("replaced", exists))

	return previous, nil
}

// Get implements store.RsvpStore.Get
func (s *RsvpStore) Get(_ context.Context, playerID string) (*domain.RsvpEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[playerID]
	if !ok {
		return nil, store.ErrRsvpNotFound
	}
	return entry, nil
}

// List implements store.RsvpStore.List
func (s *RsvpStore) List(_ context.Context) ([]*domain.RsvpEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.RsvpEntry, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.entries[id])
	}
	return result, nil
}
