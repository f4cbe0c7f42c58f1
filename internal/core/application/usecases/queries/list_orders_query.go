package queries

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via one of the NewListOrders* constructors",
)

// OrderFilter selects which orders ListOrdersQuery returns.
type OrderFilter int

const (
	// ByUser lists the orders of one user. The user or an administrator may ask.
	ByUser OrderFilter = iota + 1
	// ByStatus lists every order in one status. Administrators only.
	ByStatus
	// ForAdmin lists the orders placed against menus owned by the acting administrator.
	ForAdmin
	// All lists every order. Administrators only.
	All
)

// ListOrdersQuery lists order views, newest first.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(admin, order.Preparing)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  *identity.User
	filter OrderFilter
	userID kernel.UUID
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersByUserQuery lists the orders of userID.
func NewListOrdersByUserQuery(actor *identity.User, userID kernel.UUID) (ListOrdersQuery, error) {
	if err := errors.Join(requireActor(actor), userID.Validate()); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, filter: ByUser, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrdersByStatusQuery lists every order in status.
func NewListOrdersByStatusQuery(actor *identity.User, status order.Status) (ListOrdersQuery, error) {
	if err := errors.Join(requireActor(actor), status.Validate()); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, filter: ByStatus, status: status, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrdersForAdminQuery lists the orders placed against the actor's menus.
func NewListOrdersForAdminQuery(actor *identity.User) (ListOrdersQuery, error) {
	if err := requireActor(actor); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, filter: ForAdmin, guard: guard.NewConstructorGuard()}, nil
}

// NewListAllOrdersQuery lists every order.
func NewListAllOrdersQuery(actor *identity.User) (ListOrdersQuery, error) {
	if err := requireActor(actor); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, filter: All, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() *identity.User { return q.actor }
func (q ListOrdersQuery) Filter() OrderFilter    { return q.filter }
func (q ListOrdersQuery) UserID() kernel.UUID   { return q.userID }
func (q ListOrdersQuery) Status() order.Status  { return q.status }

func requireActor(actor *identity.User) error {
	if actor == nil {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
