package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storesense/pkg/sentinel"
)

// Publisher accepts events from detection logic and hands them to the worker
// through a bounded inbox. Emission is fire-and-forget: a full inbox drops
// the event rather than stalling a detection pass.
type Publisher struct {
	inbox chan Event
}

// NewPublisher builds a publisher with the given inbox capacity.
func NewPublisher(buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{inbox: make(chan Event, buffer)}
}

// Emit queues an event, stamping identity and time if unset. Returns
// sentinel.ErrUnavailable when the inbox is full.
func (p *Publisher) Emit(_ context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
		return nil
	default:
		return sentinel.ErrUnavailable
	}
}

// Inbox exposes the consume side for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
