package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func testEvent() *RsvpEvent {
	return NewRsvpEvent(&domain.RsvpEntry{
		Player:    domain.Player{ID: "1", Name: "John Doe"},
		Status:    domain.RsvpStatusYes,
		UpdatedAt: time.Now(),
	}, nil)
}

func TestInMemoryEventEmitter(t *testing.T) {
	// Create a minimal logger that discards output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		// Should not error even with no handlers
		err := emitter.EmitEvent(context.Background(), testEvent())
		assert.NoError(t, err)
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := testEvent()
		err := emitter.EmitEvent(context.Background(), event)
		assert.NoError(t, err)

		// Verify both handlers received the event
		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		successHandler := &MockEventHandler{}
		failingHandler := &MockEventHandler{
			HandlerError: errors.New("handler error"),
		}
		secondFailure := &MockEventHandler{
			HandlerError: errors.New("second error"),
		}

		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)
		emitter.RegisterHandler(secondFailure)

		// Should return the first error encountered
		err := emitter.EmitEvent(context.Background(), testEvent())
		assert.Error(t, err)
		assert.Equal(t, "handler error", err.Error())

		// Every handler should still have received the event
		assert.Equal(t, 1, successHandler.HandledCount)
		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, secondFailure.HandledCount)
	})

	t.Run("emit event with panicking handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		emitter.RegisterHandler(HandlerFunc(func(context.Context, *RsvpEvent) error {
			panic("handler exploded")
		}))
		counting := &MockEventHandler{}
		emitter.RegisterHandler(counting)

		var err error
		assert.NotPanics(t, func() {
			err = emitter.EmitEvent(context.Background(), testEvent())
		})
		assert.ErrorContains(t, err, "handler exploded")

		// The handler after the panicking one still receives the event
		assert.Equal(t, 1, counting.HandledCount)
	})

	t.Run("nil logger", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		assert.NoError(t, emitter.EmitEvent(context.Background(), testEvent()))
	})
}

func TestInMemoryEventEmitter_LogsHandlerFailure(t *testing.T) {
	handler := testutils.NewTestSlogHandler()
	emitter := NewInMemoryEventEmitter(slog.New(handler))
	emitter.RegisterHandler(HandlerFunc(func(context.Context, *RsvpEvent) error {
		return errors.New("boom")
	}))

	err := emitter.EmitEvent(context.Background(), testEvent())
	assert.EqualError(t, err, "boom")

	failures := handler.Messages(slog.LevelError.String())
	assert.Equal(t, []string{"handler failed to process event"}, failures)
	for _, e := range handler.Entries() {
		assert.Equal(t, "in_memory_event_emitter", e["component"])
	}
}
