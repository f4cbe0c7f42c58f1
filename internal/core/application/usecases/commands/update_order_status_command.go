package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order through the fulfillment state machine.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor     *identity.User
	orderID   kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates the command. Whether the transition is legal is decided
// by the handler against the stored status.
func NewUpdateOrderStatusCommand(
	actor *identity.User,
	orderID kernel.UUID,
	newStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(validateActor(actor), orderID.Validate(), newStatus.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		actor:     actor,
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() *identity.User  { return c.actor }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID   { return c.orderID }
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }
