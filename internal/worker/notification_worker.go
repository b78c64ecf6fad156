package worker

import (
	"context"
	"log/slog"

	"voting-dashboard/internal/metrics"
)

// Sink delivers a notification to an external collaborator.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, ev Event) error
}

type NotificationWorker struct {
	Ch     <-chan Event
	sinks  []Sink
	logger *slog.Logger
}

func NewNotificationWorker(ch <-chan Event, logger *slog.Logger, sinks ...Sink) *NotificationWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationWorker{Ch: ch, sinks: sinks, logger: logger}
}

// Run drains the channel until ctx is cancelled or the channel is closed.
// Sink failures are logged and counted; they never stop the loop.
func (w *NotificationWorker) Run(ctx context.Context) {
	w.logger.Info("notification worker started", "sinks", len(w.sinks))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("notification worker stopped")
			return
		case ev, ok := <-w.Ch:
			if !ok {
				w.logger.Info("notification worker stopped", "reason", "channel closed")
				return
			}
			w.dispatch(ctx, ev)
		}
	}
}

func (w *NotificationWorker) dispatch(ctx context.Context, ev Event) {
	for _, s := range w.sinks {
		if err := s.Deliver(ctx, ev); err != nil {
			metrics.IncNotificationFailure(s.Name())
			w.logger.Warn("notification delivery failed",
				"sink", s.Name(),
				"kind", ev.Kind,
				"error", err.Error(),
			)
		}
	}
}
