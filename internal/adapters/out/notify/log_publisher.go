package notify

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the log instead of a broker.
// It is used when no message broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "notifications")}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "order notification",
		"event", event.Event,
		"order_id", event.OrderID,
		"user_id", event.UserID,
		"status", event.Status,
		"message", event.Message)
	return nil
}
