package commands

import (
	"context"

	"mealorders/internal/core/domain/model/catalog"
)

// CreateItemCommandHandler adds an item to a menu owned by the actor (or any menu for SUPERADMIN).
type CreateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateItemCommandHandler(uowFactory CatalogUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{uowFactory: uowFactory}
}

func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
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

	menu, err := uow.MenuRepository().Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}
	if err = authorizeMenuEdit(menu, cmd.Actor(), "add items"); err != nil {
		return err
	}

	item, err := catalog.NewItem(cmd.ItemID(), menu.ID(), cmd.Name(), cmd.Details(), cmd.Price(),
		cmd.Stock(), cmd.IsVeg(), cmd.IsAvailable(), cmd.Actor().Actor())
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
