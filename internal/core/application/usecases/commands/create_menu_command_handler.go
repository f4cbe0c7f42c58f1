package commands

import (
	"context"
	"errors"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
)

// CreateMenuCommandHandler creates a menu.
//
// Only admins may create menus. An ADMIN owns at most one menu, a SUPERADMIN any number.
// The admin's user row is locked while counting so two concurrent requests cannot both
// create a first menu.
type CreateMenuCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateMenuCommandHandler(uowFactory UoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{uowFactory: uowFactory}
}

func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("user "+actor.ID().String(), "create a menu")
	}

	kitchens := make([]*catalog.KitchenAddress, 0, len(cmd.Kitchens()))
	var kitchenErrs []error
	for _, k := range cmd.Kitchens() {
		kitchen, err := catalog.NewKitchenAddress(kernel.NewUUID(), k.AddressLine1, k.AddressLine2, k.City, k.Pincode)
		if err != nil {
			kitchenErrs = append(kitchenErrs, err)
			continue
		}
		kitchens = append(kitchens, kitchen)
	}
	if err := errors.Join(kitchenErrs...); err != nil {
		return err
	}

	menu, err := catalog.NewMenu(cmd.MenuID(), actor.ID(), cmd.Name(), cmd.Details(), cmd.Rating(), kitchens, actor.Actor())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.UserRepository().GetForUpdate(ctx, actor.ID()); err != nil {
		return err
	}

	menuRepo := uow.MenuRepository()
	if !actor.IsSuperAdmin() {
		owned, err := menuRepo.CountByOwner(ctx, actor.ID())
		if err != nil {
			return err
		}
		if owned > 0 {
			return errs.NewStateIsInvalidError("user "+actor.ID().String(), "an admin may own only one menu")
		}
	}

	if err = menuRepo.Add(ctx, menu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
