package queries

import (
	"context"

	"mealorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order view. A missing order is NotFound; an order of another user is
// Forbidden unless the actor is an administrator.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := findOrderViews(ctx, h.db, "o.id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view := views[0]
	actor := query.Actor()
	if !actor.CanAccessOrderOf(view.UserID) {
		return OrderView{}, errs.NewForbiddenError("user "+actor.ID().String(), "read order "+view.OrderID.String())
	}
	return view, nil
}
