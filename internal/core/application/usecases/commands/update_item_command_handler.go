package commands

import (
	"context"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
)

// UpdateItemCommandHandler handles the admin edits of a catalog item: stock, availability
// and price. Each edit locks the item row, checks that the actor owns the item's menu
// (or is SUPERADMIN) and records the actor on the item.
type UpdateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateItemCommandHandler(uowFactory CatalogUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{uowFactory: uowFactory}
}

// HandleStock sets the stock. Negative targets fail with InvalidArgument.
func (h UpdateItemCommandHandler) HandleStock(ctx context.Context, cmd UpdateItemStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.edit(ctx, cmd.Actor(), cmd.ItemID(), "update stock", func(item *catalog.Item) error {
		return item.UpdateStock(cmd.NewStock(), cmd.Actor().Actor())
	})
}

// HandleAvailability toggles availability.
func (h UpdateItemCommandHandler) HandleAvailability(ctx context.Context, cmd SetItemAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.edit(ctx, cmd.Actor(), cmd.ItemID(), "change availability", func(item *catalog.Item) error {
		return item.SetAvailability(cmd.Available(), cmd.Actor().Actor())
	})
}

// HandlePrice changes the live price. Prices captured on existing order lines are not touched.
func (h UpdateItemCommandHandler) HandlePrice(ctx context.Context, cmd UpdateItemPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.edit(ctx, cmd.Actor(), cmd.ItemID(), "change price", func(item *catalog.Item) error {
		return item.UpdatePrice(cmd.Price(), cmd.Actor().Actor())
	})
}

func (h UpdateItemCommandHandler) edit(
	ctx context.Context,
	actor *identity.User,
	itemID kernel.UUID,
	action string,
	apply func(*catalog.Item) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := loadEditableItem(ctx, uow, actor, itemID, action)
	if err != nil {
		return err
	}
	if err = apply(item); err != nil {
		return err
	}
	if err = uow.ItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
