package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/core/ports"
)

// DefaultTimeout bounds a single publish when NewAsync is given a non-positive timeout.
const DefaultTimeout = 5 * time.Second

var _ ports.Notifier = (*Async)(nil)

// Async is a fire-and-forget ports.Notifier.
type Async struct {
	publisher Publisher
	logger    *slog.Logger
	timeout   time.Duration
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewAsync wraps publisher. Failures are written to logger with the order_id and event attributes.
func NewAsync(publisher Publisher, logger *slog.Logger, timeout time.Duration) *Async {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Async{
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NotifyOrderCreated announces a freshly placed order to its owner and, through MenuID,
// to the admin of the menu it was placed against.
func (a *Async) NotifyOrderCreated(ctx context.Context, o *order.Order) {
	event := Event{
		Event:       OrderCreated,
		OrderID:     o.ID().String(),
		UserID:      o.UserID().String(),
		Status:      o.Status().String(),
		Message:     o.Status().Message(),
		TotalAmount: o.TotalAmount().String(),
		OccurredAt:  a.now(),
	}
	if menuID := o.MenuID(); menuID != nil {
		event.MenuID = menuID.String()
	}
	a.dispatch(ctx, event)
}

// NotifyStatusChanged tells the order owner about the new status.
// The event is built before returning, so the caller may keep using o.
func (a *Async) NotifyStatusChanged(ctx context.Context, o *order.Order, newStatus order.Status) {
	a.dispatch(ctx, Event{
		Event:       OrderStatusChanged,
		OrderID:     o.ID().String(),
		UserID:      o.UserID().String(),
		Status:      newStatus.String(),
		Message:     newStatus.Message(),
		TotalAmount: o.TotalAmount().String(),
		OccurredAt:  a.now(),
	})
}

// Wait blocks until every dispatched event has been published or has failed.
func (a *Async) Wait() {
	a.wg.Wait()
}

func (a *Async) dispatch(ctx context.Context, event Event) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()

		if err := a.publisher.Publish(publishCtx, event); err != nil {
			a.logger.ErrorContext(publishCtx, "failed to publish notification",
				"order_id", event.OrderID,
				"event", event.Event,
				"error", err)
		}
	}()
}
