package commands

import (
	"context"
)

// SetMenuActiveCommandHandler toggles a menu. Allowed for the menu owner and SUPERADMIN.
type SetMenuActiveCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSetMenuActiveCommandHandler(uowFactory CatalogUoWFactory) SetMenuActiveCommandHandler {
	return SetMenuActiveCommandHandler{uowFactory: uowFactory}
}

func (h SetMenuActiveCommandHandler) Handle(ctx context.Context, cmd SetMenuActiveCommand) error {
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
	if err = authorizeMenuEdit(menu, cmd.Actor(), "change visibility"); err != nil {
		return err
	}
	if err = menu.SetActive(cmd.Active(), cmd.Actor().Actor()); err != nil {
		return err
	}
	if err = menuRepo.Update(ctx, menu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
