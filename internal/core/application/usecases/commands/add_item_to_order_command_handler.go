package commands

import (
	"context"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/services"
	"mealorders/internal/pkg/errs"
)

// AddItemToOrderCommandHandler adds an item to an order or resizes the existing line.
//
// The order row and then the item row are locked. Growing a line deducts the difference from
// stock and fails with InvalidState when stock is short; shrinking a line restores the difference.
type AddItemToOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddItemToOrderCommandHandler creates the handler.
func NewAddItemToOrderCommandHandler(uowFactory UoWFactory) AddItemToOrderCommandHandler {
	return AddItemToOrderCommandHandler{uowFactory: uowFactory}
}

// Handle applies the command.
func (h AddItemToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemToOrderCommand) error {
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

	o, err := lockOrderFor(ctx, uow.OrderRepository(), cmd.Actor(), cmd.OrderID(), "change")
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	item, err := itemRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !item.IsAvailable() {
		return errs.NewStateIsInvalidError("item "+item.ID().String(), "item unavailable")
	}
	if err = ensureOrderableMenus(ctx, uow.MenuRepository(), o.MenuID(), item); err != nil {
		return err
	}

	diff, err := o.AddItem(kernel.NewUUID(), item.ID(), cmd.Quantity(), item.Price())
	if err != nil {
		return err
	}

	if diff != 0 {
		if err = services.NewStockKeeper().Adjust(item, diff); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
