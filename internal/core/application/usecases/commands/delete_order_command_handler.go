package commands

import (
	"context"
)

// DeleteOrderCommandHandler deletes an order. Unless the order was already cancelled, its
// lines are restored to stock first.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	o, err := lockOrderFor(ctx, orderRepo, cmd.Actor(), cmd.OrderID(), "delete")
	if err != nil {
		return err
	}

	if o.HoldsStock() {
		if err = restoreOrderStock(ctx, uow.ItemRepository(), o); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
