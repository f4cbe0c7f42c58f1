package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrUpdateMenuRatingCommandIsNotConstructed = errors.New(
	"UpdateMenuRatingCommand must be created via NewUpdateMenuRatingCommand constructor",
)

// UpdateMenuRatingCommand sets the rating of a menu. The range is checked by the menu itself.
type UpdateMenuRatingCommand struct { //nolint:recvcheck //using for validation
	actor  *identity.User
	menuID kernel.UUID
	rating float64

	guard guard.ConstructorGuard
}

func NewUpdateMenuRatingCommand(actor *identity.User, menuID kernel.UUID, rating float64) (UpdateMenuRatingCommand, error) {
	if err := errors.Join(validateActor(actor), menuID.Validate()); err != nil {
		return UpdateMenuRatingCommand{}, err
	}
	return UpdateMenuRatingCommand{actor: actor, menuID: menuID, rating: rating, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateMenuRatingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuRatingCommandIsNotConstructed)
}

func (c UpdateMenuRatingCommand) Actor() *identity.User { return c.actor }
func (c UpdateMenuRatingCommand) MenuID() kernel.UUID   { return c.menuID }
func (c UpdateMenuRatingCommand) Rating() float64       { return c.rating }
