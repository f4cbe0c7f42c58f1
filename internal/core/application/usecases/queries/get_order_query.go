package queries

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order in its persisted read shape. Only the owner of the order
// or an administrator may read it.
//
// Example:
//
//	query, err := NewGetOrderQuery(currentUser, orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	fmt.Printf("%s: %s, %d lines\n", view.OrderID, view.TotalAmount, len(view.Items))
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	actor   *identity.User
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates the query.
func NewGetOrderQuery(actor *identity.User, orderID kernel.UUID) (GetOrderQuery, error) {
	if actor == nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("actor")
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() *identity.User { return q.actor }
func (q GetOrderQuery) OrderID() kernel.UUID  { return q.orderID }
