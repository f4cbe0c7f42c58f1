package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrGetOrCreatePendingOrderCommandIsNotConstructed = errors.New(
	"GetOrCreatePendingOrderCommand must be created via NewGetOrCreatePendingOrderCommand constructor",
)

// GetOrCreatePendingOrderCommand opens the cart of a user.
type GetOrCreatePendingOrderCommand struct { //nolint:recvcheck //using for validation
	actor  *identity.User
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrCreatePendingOrderCommand creates a command for the cart of userID.
func NewGetOrCreatePendingOrderCommand(actor *identity.User, userID kernel.UUID) (GetOrCreatePendingOrderCommand, error) {
	if err := errors.Join(validateActor(actor), userID.Validate()); err != nil {
		return GetOrCreatePendingOrderCommand{}, err
	}
	return GetOrCreatePendingOrderCommand{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GetOrCreatePendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreatePendingOrderCommandIsNotConstructed)
}

func (c GetOrCreatePendingOrderCommand) Actor() *identity.User { return c.actor }
func (c GetOrCreatePendingOrderCommand) UserID() kernel.UUID   { return c.userID }
