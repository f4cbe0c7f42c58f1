package queries

import (
	"context"

	"mealorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists order views according to the query's filter.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle checks the actor's permission for the filter and runs the listing.
// Listing the orders of an unknown user is NotFound.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	who := "user " + actor.ID().String()

	switch query.Filter() {
	case ByUser:
		if !actor.CanAccessOrderOf(query.UserID()) {
			return nil, errs.NewForbiddenError(who, "list orders of user "+query.UserID().String())
		}
		n, err := scanCount(h.db.WithContext(ctx).Raw(
			"SELECT COUNT(*) FROM users WHERE id = ?", query.UserID().Bytes(),
		).Row())
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return findOrderViews(ctx, h.db, "o.user_id = ?", query.UserID().Bytes())

	case ByStatus:
		if !actor.IsAdmin() {
			return nil, errs.NewForbiddenError(who, "list orders by status")
		}
		return findOrderViews(ctx, h.db, "o.status = ?", query.Status().String())

	case ForAdmin:
		if !actor.IsAdmin() {
			return nil, errs.NewForbiddenError(who, "list orders of own menus")
		}
		return findOrderViews(ctx, h.db,
			"o.menu_id IN (SELECT m.id FROM menus m WHERE m.owner_id = ?)", actor.ID().Bytes())

	default:
		if !actor.IsAdmin() {
			return nil, errs.NewForbiddenError(who, "list all orders")
		}
		return findOrderViews(ctx, h.db, "TRUE")
	}
}
