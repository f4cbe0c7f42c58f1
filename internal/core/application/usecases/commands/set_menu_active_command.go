package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrSetMenuActiveCommandIsNotConstructed = errors.New(
	"SetMenuActiveCommand must be created via NewSetMenuActiveCommand constructor",
)

// SetMenuActiveCommand shows or hides a menu.
type SetMenuActiveCommand struct { //nolint:recvcheck //using for validation
	actor  *identity.User
	menuID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

func NewSetMenuActiveCommand(actor *identity.User, menuID kernel.UUID, active bool) (SetMenuActiveCommand, error) {
	if err := errors.Join(validateActor(actor), menuID.Validate()); err != nil {
		return SetMenuActiveCommand{}, err
	}
	return SetMenuActiveCommand{actor: actor, menuID: menuID, active: active, guard: guard.NewConstructorGuard()}, nil
}

func (c SetMenuActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuActiveCommandIsNotConstructed)
}

func (c SetMenuActiveCommand) Actor() *identity.User { return c.actor }
func (c SetMenuActiveCommand) MenuID() kernel.UUID   { return c.menuID }
func (c SetMenuActiveCommand) Active() bool          { return c.active }
