package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var (
	ErrUpdateItemStockCommandIsNotConstructed = errors.New(
		"UpdateItemStockCommand must be created via NewUpdateItemStockCommand constructor",
	)
	ErrSetItemAvailabilityCommandIsNotConstructed = errors.New(
		"SetItemAvailabilityCommand must be created via NewSetItemAvailabilityCommand constructor",
	)
	ErrUpdateItemPriceCommandIsNotConstructed = errors.New(
		"UpdateItemPriceCommand must be created via NewUpdateItemPriceCommand constructor",
	)
)

// UpdateItemStockCommand sets the stock of an item on behalf of an admin. A negative target is
// rejected by the handler through catalog.Item.UpdateStock so that the rule lives in one place.
type UpdateItemStockCommand struct { //nolint:recvcheck //using for validation
	actor    *identity.User
	itemID   kernel.UUID
	newStock int

	guard guard.ConstructorGuard
}

func NewUpdateItemStockCommand(actor *identity.User, itemID kernel.UUID, newStock int) (UpdateItemStockCommand, error) {
	if err := errors.Join(validateActor(actor), itemID.Validate()); err != nil {
		return UpdateItemStockCommand{}, err
	}
	return UpdateItemStockCommand{actor: actor, itemID: itemID, newStock: newStock, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateItemStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStockCommandIsNotConstructed)
}

func (c UpdateItemStockCommand) Actor() *identity.User { return c.actor }
func (c UpdateItemStockCommand) ItemID() kernel.UUID   { return c.itemID }
func (c UpdateItemStockCommand) NewStock() int         { return c.newStock }

// SetItemAvailabilityCommand makes an item orderable or not.
type SetItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actor     *identity.User
	itemID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetItemAvailabilityCommand(actor *identity.User, itemID kernel.UUID, available bool) (SetItemAvailabilityCommand, error) {
	if err := errors.Join(validateActor(actor), itemID.Validate()); err != nil {
		return SetItemAvailabilityCommand{}, err
	}
	return SetItemAvailabilityCommand{actor: actor, itemID: itemID, available: available, guard: guard.NewConstructorGuard()}, nil
}

func (c SetItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetItemAvailabilityCommandIsNotConstructed)
}

func (c SetItemAvailabilityCommand) Actor() *identity.User { return c.actor }
func (c SetItemAvailabilityCommand) ItemID() kernel.UUID   { return c.itemID }
func (c SetItemAvailabilityCommand) Available() bool       { return c.available }

// UpdateItemPriceCommand changes the live price of an item.
type UpdateItemPriceCommand struct { //nolint:recvcheck //using for validation
	actor  *identity.User
	itemID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateItemPriceCommand(actor *identity.User, itemID kernel.UUID, price kernel.Money) (UpdateItemPriceCommand, error) {
	if err := errors.Join(validateActor(actor), itemID.Validate(), price.Validate()); err != nil {
		return UpdateItemPriceCommand{}, err
	}
	return UpdateItemPriceCommand{actor: actor, itemID: itemID, price: price, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemPriceCommandIsNotConstructed)
}

func (c UpdateItemPriceCommand) Actor() *identity.User { return c.actor }
func (c UpdateItemPriceCommand) ItemID() kernel.UUID   { return c.itemID }
func (c UpdateItemPriceCommand) Price() kernel.Money   { return c.price }
