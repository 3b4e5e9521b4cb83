package events

import (
	"context"
	"log/slog"
)

// Sink is anywhere events end up: Kafka in production, a log sink in dev,
// a slice in tests.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker drains the publisher inbox into a sink. Sink failures are logged and
// skipped; the event stream is advisory and must never block detection.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Publish(ctx, event); err != nil {
				w.logger.Warn("dropping detection event",
					"event_id", event.ID,
					"type", event.Type,
					"error", err,
				)
			}
		}
	}
}

// LogSink writes events to the structured log. Used when no broker is
// configured.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Publish(_ context.Context, event Event) error {
	s.Logger.Info("detection event",
		"event_id", event.ID,
		"type", event.Type,
		"store_id", event.StoreID,
		"method", event.Method,
		"confidence", event.Confidence,
	)
	return nil
}
