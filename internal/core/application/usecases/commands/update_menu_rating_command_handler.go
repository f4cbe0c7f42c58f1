package commands

import (
	"context"
)

// UpdateMenuRatingCommandHandler rates a menu. Allowed for the menu owner and SUPERADMIN.
type UpdateMenuRatingCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateMenuRatingCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuRatingCommandHandler {
	return UpdateMenuRatingCommandHandler{uowFactory: uowFactory}
}

func (h UpdateMenuRatingCommandHandler) Handle(ctx context.Context, cmd UpdateMenuRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	menu, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}
	if err = authorizeMenuEdit(menu, cmd.Actor(), "rate"); err != nil {
		return err
	}
	if err = menu.UpdateRating(cmd.Rating(), cmd.Actor().Actor()); err != nil {
		return err
	}
	if err = menuRepo.Update(ctx, menu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
