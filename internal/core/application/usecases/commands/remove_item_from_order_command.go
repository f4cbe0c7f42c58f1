package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrRemoveItemFromOrderCommandIsNotConstructed = errors.New(
	"RemoveItemFromOrderCommand must be created via NewRemoveItemFromOrderCommand constructor",
)

// RemoveItemFromOrderCommand deletes one line of an order.
type RemoveItemFromOrderCommand struct { //nolint:recvcheck //using for validation
	actor       *identity.User
	orderID     kernel.UUID
	orderItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveItemFromOrderCommand(
	actor *identity.User,
	orderID, orderItemID kernel.UUID,
) (RemoveItemFromOrderCommand, error) {
	if err := errors.Join(validateActor(actor), orderID.Validate(), orderItemID.Validate()); err != nil {
		return RemoveItemFromOrderCommand{}, err
	}
	return RemoveItemFromOrderCommand{
		actor:       actor,
		orderID:     orderID,
		orderItemID: orderItemID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItemFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromOrderCommandIsNotConstructed)
}

func (c RemoveItemFromOrderCommand) Actor() *identity.User    { return c.actor }
func (c RemoveItemFromOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c RemoveItemFromOrderCommand) OrderItemID() kernel.UUID { return c.orderItemID }
