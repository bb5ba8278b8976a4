package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/store"
	"github.com/phrazzld/rsvp-tracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *RsvpStore {
	return NewRsvpStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func entryFor(id, name string, status domain.RsvpStatus) *domain.RsvpEntry {
	return &domain.RsvpEntry{
		Player:    domain.Player{ID: id, Name: name},
		Status:    status,
		UpdatedAt: time.Now(),
	}
}

func TestRsvpStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first := entryFor("1", "John Doe", domain.RsvpStatusYes)
	previous, err := s.Put(ctx, first)
	require.NoError(t, err)
	assert.Nil(t, previous, "first put should not replace anything")

	got, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Same(t, first, got)

	second := entryFor("1", "John Doe", domain.RsvpStatusNo)
	previous, err = s.Put(ctx, second)
	require.NoError(t, err)
	assert.Same(t, first, previous)

	got, err = s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Same(t, second, got)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRsvpStore_GetMissing(t *testing.T) {
	_, err := newTestStore().Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, store.ErrRsvpNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestRsvpStore_PutInvalid(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.Put(ctx, nil)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = s.Put(ctx, entryFor("", "No ID", domain.RsvpStatusYes))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "rsvp", storeErr.Entity)
	assert.Equal(t, "put", storeErr.Operation)
	assert.Equal(t, "entry has no player id", storeErr.Message)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRsvpStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, id := range []string{"3", "1", "2"} {
		_, err := s.Put(ctx, entryFor(id, "p"+id, domain.RsvpStatusMaybe))
		require.NoError(t, err)
	}
	// Updating an existing player keeps its original position.
	_, err = s.Put(ctx, entryFor("3", "p3", domain.RsvpStatusYes))
	require.NoError(t, err)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "3", entries[0].Player.ID)
	assert.Equal(t, domain.RsvpStatusYes, entries[0].Status)
	assert.Equal(t, "1", entries[1].Player.ID)
	assert.Equal(t, "2", entries[2].Player.ID)
}

func TestRsvpStore_ConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := domain.RsvpStatuses()[i%3]
			_, _ = s.Put(ctx, entryFor("shared", "Shared", status))
		}(i)
	}
	wg.Wait()

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRsvpStore_LogsReplacement(t *testing.T) {
	ctx := context.Background()
	handler := testutils.NewTestSlogHandler()
	s := NewRsvpStore(slog.New(handler))

	_, err := s.Put(ctx, entryFor("1", "John Doe", domain.RsvpStatusNo))
	require.NoError(t, err)
	_, err = s.Put(ctx, entryFor("1", "John Doe", domain.RsvpStatusYes))
	require.NoError(t, err)

	entries := handler.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "stored rsvp entry", entries[0]["message"])
	assert.Equal(t, "memory_rsvp_store", entries[0]["component"])
	assert.Equal(t, false, entries[0]["replaced"])
	assert.Equal(t, true, entries[1]["replaced"])
	assert.Equal(t, "Yes", entries[1]["status"])
}
