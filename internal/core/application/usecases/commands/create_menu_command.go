package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// KitchenAddressInput describes one kitchen of a new menu.
type KitchenAddressInput struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	Pincode      string
}

// CreateMenuCommand creates a menu owned by the acting admin.
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	actor    *identity.User
	menuID   kernel.UUID
	name     string
	details  string
	rating   float64
	kitchens []KitchenAddressInput

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(
	actor *identity.User,
	menuID kernel.UUID,
	name, details string,
	rating float64,
	kitchens []KitchenAddressInput,
) (CreateMenuCommand, error) {
	if err := errors.Join(validateActor(actor), menuID.Validate()); err != nil {
		return CreateMenuCommand{}, err
	}
	return CreateMenuCommand{
		actor:    actor,
		menuID:   menuID,
		name:     name,
		details:  details,
		rating:   rating,
		kitchens: append([]KitchenAddressInput(nil), kitchens...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) Actor() *identity.User            { return c.actor }
func (c CreateMenuCommand) MenuID() kernel.UUID              { return c.menuID }
func (c CreateMenuCommand) Name() string                     { return c.name }
func (c CreateMenuCommand) Details() string                  { return c.details }
func (c CreateMenuCommand) Rating() float64                  { return c.rating }
func (c CreateMenuCommand) Kitchens() []KitchenAddressInput { return c.kitchens }
