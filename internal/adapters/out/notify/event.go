// Package notify delivers order notifications to customers without holding up the
// operation that triggered them.
//
// Async implements ports.Notifier on top of a Publisher. Every call returns immediately;
// the event is handed to the publisher on its own goroutine with a context that survives
// the request and a bounded timeout. Publishing failures are logged, never returned.
package notify

import (
	"context"
	"time"
)

// Event names carried in Event.Event.
const (
	OrderCreated       = "ORDER_CREATED"
	OrderStatusChanged = "ORDER_STATUS_CHANGED"
)

// Event is the wire shape of a customer notification.
type Event struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id,omitempty"`
	MenuID      string    `json:"menu_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	Message     string    `json:"message,omitempty"`
	TotalAmount string    `json:"total_amount,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher hands an event to a delivery channel.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
