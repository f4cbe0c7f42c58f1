package ports

import (
	"context"

	"mealorders/internal/core/domain/model/order"
)

// Notifier informs customers about their orders. Calls are fire-and-forget: implementations
// must not block the caller on delivery and never report failures back to it.
// Handlers invoke the notifier only after their unit of work has committed.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, o *order.Order)
	NotifyStatusChanged(ctx context.Context, o *order.Order, newStatus order.Status)
}
