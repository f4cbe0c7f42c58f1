package ports

import (
	"context"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates. An order is always
// stored and loaded together with all of its lines.
type OrderRepository interface {
	// Add persists a new order and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order and replaces its stored lines with the aggregate's lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order. Its lines are removed with it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the unit of work ends.
	// Every order mutation goes through it, so that an admin changing status and the owner
	// changing lines never overwrite each other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindOldestPendingByUser returns the oldest PENDING order of userID, or an
	// errs.ObjectNotFoundError.
	FindOldestPendingByUser(ctx context.Context, userID kernel.UUID) (*order.Order, error)

	// FindOrderIDByLine returns the order that owns an order line, or an errs.ObjectNotFoundError.
	FindOrderIDByLine(ctx context.Context, orderItemID kernel.UUID) (kernel.UUID, error)
}
