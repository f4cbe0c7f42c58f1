package commands

import (
	"context"

	"mealorders/internal/core/ports"
	"mealorders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies an administrative status transition.
//
// Business rules:
//   - Only ADMIN and SUPERADMIN users may change status (Forbidden otherwise)
//   - Illegal edges of the state machine fail with InvalidState
//   - Entering CANCELLED restores the stock of every line; cancelling again is a no-op
//   - The owner is notified after commit whenever the status actually changed
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(admin, orderID, order.Preparing)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errs.IsForbidden(err):
//	    // not an admin
//	case errs.IsInvalidState(err):
//	    // e.g. PENDING -> DELIVERED
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !cmd.Actor().IsAdmin() {
		return errs.NewForbiddenError("user "+cmd.Actor().ID().String(), "change the status of order "+o.ID().String())
	}

	previous := o.Status()
	restoreStock, err := o.ChangeStatus(cmd.NewStatus())
	if err != nil {
		return err
	}
	if previous == o.Status() {
		return nil
	}

	if restoreStock {
		if err = restoreOrderStock(ctx, uow.ItemRepository(), o); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, o, o.Status())
	return nil
}
