package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds a dish to a menu.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	actor       *identity.User
	itemID      kernel.UUID
	menuID      kernel.UUID
	name        string
	details     string
	price       kernel.Money
	stock       int
	isVeg       bool
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewCreateItemCommand checks identifiers and the price. Remaining field rules are enforced
// by catalog.NewItem.
func NewCreateItemCommand(
	actor *identity.User,
	itemID, menuID kernel.UUID,
	name, details string,
	price kernel.Money,
	stock int,
	isVeg, isAvailable bool,
) (CreateItemCommand, error) {
	if err := errors.Join(validateActor(actor), itemID.Validate(), menuID.Validate(), price.Validate()); err != nil {
		return CreateItemCommand{}, err
	}
	return CreateItemCommand{
		actor:       actor,
		itemID:      itemID,
		menuID:      menuID,
		name:        name,
		details:     details,
		price:       price,
		stock:       stock,
		isVeg:       isVeg,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) Actor() *identity.User { return c.actor }
func (c CreateItemCommand) ItemID() kernel.UUID   { return c.itemID }
func (c CreateItemCommand) MenuID() kernel.UUID   { return c.menuID }
func (c CreateItemCommand) Name() string          { return c.name }
func (c CreateItemCommand) Details() string       { return c.details }
func (c CreateItemCommand) Price() kernel.Money   { return c.price }
func (c CreateItemCommand) Stock() int            { return c.stock }
func (c CreateItemCommand) IsVeg() bool           { return c.isVeg }
func (c CreateItemCommand) IsAvailable() bool     { return c.isAvailable }
