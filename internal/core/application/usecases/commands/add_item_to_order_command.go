package commands

import (
	"errors"
	"fmt"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var ErrAddItemToOrderCommandIsNotConstructed = errors.New(
	"AddItemToOrderCommand must be created via NewAddItemToOrderCommand constructor",
)

// AddItemToOrderCommand sets the quantity of an item on an order. When the order already
// holds the item, quantity replaces the line's quantity.
type AddItemToOrderCommand struct { //nolint:recvcheck //using for validation
	actor    *identity.User
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddItemToOrderCommand fails with InvalidArgument for a non-positive quantity.
func NewAddItemToOrderCommand(
	actor *identity.User,
	orderID, itemID kernel.UUID,
	quantity int,
) (AddItemToOrderCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(validateActor(actor), orderID.Validate(), itemID.Validate(), quantityErr); err != nil {
		return AddItemToOrderCommand{}, err
	}
	return AddItemToOrderCommand{
		actor:    actor,
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToOrderCommandIsNotConstructed)
}

func (c AddItemToOrderCommand) Actor() *identity.User { return c.actor }
func (c AddItemToOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c AddItemToOrderCommand) ItemID() kernel.UUID   { return c.itemID }
func (c AddItemToOrderCommand) Quantity() int         { return c.quantity }
