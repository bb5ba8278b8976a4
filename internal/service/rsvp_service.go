package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/events"
	"github.com/phrazzld/rsvp-tracker/internal/platform/logger"
	"github.com/phrazzld/rsvp-tracker/internal/platform/memory"
	"github.com/phrazzld/rsvp-tracker/internal/store"
)

// RsvpService provides RSVP tracking operations
type RsvpService interface {
	// AddOrUpdateRsvp records status for player, replacing any earlier
	// response from the same player ID. Returns the stored entry.
	// Returns domain.ErrInvalidPlayer or domain.ErrInvalidStatus without
	// changing any state when validation fails.
	AddOrUpdateRsvp(ctx context.Context, player *domain.Player, status domain.RsvpStatus) (*domain.RsvpEntry, error)

	// GetRsvp returns the current entry for a player ID.
	// Returns ErrRsvpNotFound if the player has not responded.
	GetRsvp(ctx context.Context, playerID string) (*domain.RsvpEntry, error)

	// GetConfirmedAttendees returns the players whose current status is Yes.
	GetConfirmedAttendees(ctx context.Context) []domain.Player

	// GetRsvpCounts tallies the current entries by status.
	GetRsvpCounts(ctx context.Context) domain.RsvpCounts

	// GetAllRsvps returns the current entry of every player who responded.
	GetAllRsvps(ctx context.Context) []*domain.RsvpEntry
}

// Option configures optional RsvpService collaborators.
type Option func(*rsvpServiceImpl)

// WithStore replaces the default in-memory store.
func WithStore(s store.RsvpStore) Option {
	return func(svc *rsvpServiceImpl) {
		if s != nil {
			svc.store = s
		}
	}
}

// WithEmitter publishes an event for every stored response.
func WithEmitter(e events.EventEmitter) Option {
	return func(svc *rsvpServiceImpl) {
		svc.emitter = e
	}
}

// WithClock sets the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(svc *rsvpServiceImpl) {
		if now != nil {
			svc.now = now
		}
	}
}

// rsvpServiceImpl implements the RsvpService interface
type rsvpServiceImpl struct {
	store   store.RsvpStore
	emitter events.EventEmitter
	logger  logger.Logger
	now     func() time.Time
}

// NewRsvpService creates a new RsvpService.
// A nil log discards all messages.
func NewRsvpService(log logger.Logger, opts ...Option) RsvpService {
	if log == nil {
		log = logger.Nop()
	}

	svc := &rsvpServiceImpl{
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.store == nil {
		svc.store = memory.NewRsvpStore(nil)
	}

	svc.logInfo("RSVP Service initialized")
	return svc
}

// AddOrUpdateRsvp implements RsvpService.AddOrUpdateRsvp
func (s *rsvpServiceImpl) AddOrUpdateRsvp(
	ctx context.Context,
	player *domain.Player,
	status domain.RsvpStatus,
) (*domain.RsvpEntry, error) {
	entry, err := domain.NewRsvpEntry(player, status, s.now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlayer):
			s.logError("Invalid player provided", nil)
		case errors.Is(err, domain.ErrInvalidStatus):
			s.logError(fmt.Sprintf("Invalid RSVP status: %s", status), nil)
		}
		return nil, err
	}

	previous, err := s.store.Put(ctx, entry)
	if err != nil {
		s.logError("failed to store RSVP for player "+player.ID, err)
		return nil, NewServiceError("add_or_update_rsvp", "failed to store entry", err)
	}

	action := "added"
	if previous != nil {
		action = "updated"
	}
	s.logInfo(fmt.Sprintf("RSVP %s for player %s", action, player.Name))

	s.emit(ctx, events.NewRsvpEvent(entry, previous))

	return entry, nil
}

// GetRsvp implements RsvpService.GetRsvp
func (s *rsvpServiceImpl) GetRsvp(ctx context.Context, playerID string) (*domain.RsvpEntry, error) {
	entry, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, NewServiceError("get_rsvp", "failed to load entry", err)
	}
	return entry, nil
}

// GetConfirmedAttendees implements RsvpService.GetConfirmedAttendees
func (s *rsvpServiceImpl) GetConfirmedAttendees(ctx context.Context) []domain.Player {
	attendees := make([]domain.Player, 0)
	for _, entry := range s.entries(ctx) {
		if entry.Status == domain.RsvpStatusYes {
			attendees = append(attendees, entry.Player)
		}
	}
	return attendees
}

// GetRsvpCounts implements RsvpService.GetRsvpCounts
func (s *rsvpServiceImpl) GetRsvpCounts(ctx context.Context) domain.RsvpCounts {
	return domain.CountRsvps(s.entries(ctx))
}

// GetAllRsvps implements RsvpService.GetAllRsvps
func (s *rsvpServiceImpl) GetAllRsvps(ctx context.Context) []*domain.RsvpEntry {
	return s.entries(ctx)
}

// entries lists the store, degrading to an empty result on failure so that
// read operations never fail.
func (s *rsvpServiceImpl) entries(ctx context.Context) []*domain.RsvpEntry {
	list, err := s.store.List(ctx)
	if err != nil {
		s.logError("failed to list RSVPs", err)
		return []*domain.RsvpEntry{}
	}
	if list == nil {
		return []*domain.RsvpEntry{}
	}
	return list
}

func (s *rsvpServiceImpl) emit(ctx context.Context, event *events.RsvpEvent) {
	if s.emitter == nil {
		return
	}
	bestEffort(func() {
		if err := s.emitter.EmitEvent(ctx, event); err != nil {
			s.logWarn(fmt.Sprintf("RSVP event %s for player %s was not fully delivered: %v",
				event.Type, event.PlayerID, err))
		}
	})
}

func (s *rsvpServiceImpl) logInfo(msg string) {
	bestEffort(func() { s.logger.Info(msg) })
}

func (s *rsvpServiceImpl) logWarn(msg string) {
	bestEffort(func() { s.logger.Warn(msg) })
}

func (s *rsvpServiceImpl) logError(msg string, err error) {
	bestEffort(func() { s.logger.Error(msg, err) })
}

// bestEffort runs fn and discards any panic it raises.
func bestEffort(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
