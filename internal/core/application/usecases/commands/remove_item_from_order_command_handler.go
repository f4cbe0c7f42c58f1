package commands

import (
	"context"
	"errors"

	"mealorders/internal/core/domain/services"
	"mealorders/internal/pkg/errs"
)

// RemoveItemFromOrderCommandHandler deletes a line and restores its quantity to stock.
//
// A line id unknown everywhere is NotFound; a line that exists on another order is
// InvalidArgument.
type RemoveItemFromOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveItemFromOrderCommandHandler(uowFactory UoWFactory) RemoveItemFromOrderCommandHandler {
	return RemoveItemFromOrderCommandHandler{uowFactory: uowFactory}
}

func (h RemoveItemFromOrderCommandHandler) Handle(ctx context.Context, cmd RemoveItemFromOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := lockOrderFor(ctx, orderRepo, cmd.Actor(), cmd.OrderID(), "change")
	if err != nil {
		return err
	}

	if _, ok := o.Line(cmd.OrderItemID()); !ok {
		ownerID, err := orderRepo.FindOrderIDByLine(ctx, cmd.OrderItemID())
		if err != nil {
			return err
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"orderItemID",
			errors.New("order item belongs to order "+ownerID.String()),
		)
	}

	removed, err := o.RemoveItem(cmd.OrderItemID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	item, err := itemRepo.GetForUpdate(ctx, removed.ItemID())
	if err != nil {
		return err
	}
	if err = services.NewStockKeeper().Restore(item, removed.Quantity()); err != nil {
		return err
	}
	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
