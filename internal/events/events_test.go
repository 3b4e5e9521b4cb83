package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storesense/pkg/sentinel"
)

type captureSink struct {
	mu       sync.Mutex
	events   []Event
	err      error
	attempts int
}

func (s *captureSink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) attemptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func (s *captureSink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func TestPublisherEmit(t *testing.T) {
	t.Run("stamps id and timestamp", func(t *testing.T) {
		pub := NewPublisher(4)
		require.NoError(t, pub.Emit(context.Background(), Event{Type: TypeDetected, StoreID: "kroger-44"}))

		got := <-pub.Inbox()
		assert.NotZero(t, got.ID)
		assert.False(t, got.Timestamp.IsZero())
		assert.Equal(t, TypeDetected, got.Type)
	})

	t.Run("full inbox drops instead of blocking", func(t *testing.T) {
		pub := NewPublisher(1)
		require.NoError(t, pub.Emit(context.Background(), Event{Type: TypeDetected}))
		err := pub.Emit(context.Background(), Event{Type: TypeDetected})
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}

func TestWorkerDrainsInbox(t *testing.T) {
	pub := NewPublisher(8)
	sink := &captureSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	worker := NewWorker(sink, pub.Inbox(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	require.NoError(t, pub.Emit(ctx, Event{Type: TypeDetected, StoreID: "a"}))
	require.NoError(t, pub.Emit(ctx, Event{Type: TypeConfirmed, StoreID: "a"}))

	assert.Eventually(t, func() bool {
		return len(sink.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestWorkerSurvivesSinkFailure(t *testing.T) {
	pub := NewPublisher(8)
	sink := &captureSink{err: errors.New("broker down")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	worker := NewWorker(sink, pub.Inbox(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	require.NoError(t, pub.Emit(ctx, Event{Type: TypeDetected, StoreID: "a"}))

	// Wait for the worker to attempt (and fail) the first publish before
	// restoring the sink, so the failure is actually exercised.
	assert.Eventually(t, func() bool {
		return sink.attemptCount() >= 1
	}, time.Second, 10*time.Millisecond)

	// The failing publish is logged, and the worker keeps consuming.
	sink.mu.Lock()
	sink.err = nil
	sink.mu.Unlock()
	require.NoError(t, pub.Emit(ctx, Event{Type: TypeConfirmed, StoreID: "a"}))

	assert.Eventually(t, func() bool {
		got := sink.snapshot()
		return len(got) == 1 && got[0].Type == TypeConfirmed
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
