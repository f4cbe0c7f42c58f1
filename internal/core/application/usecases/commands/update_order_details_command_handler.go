package commands

import (
	"context"

	"mealorders/internal/pkg/errs"
)

// UpdateOrderDetailsCommandHandler records payment details and attaches the delivery address,
// typically when a cart is checked out.
//
// The owner or an admin may change the payment mode and the address; the address must belong
// to the order's owner. Payment status is reported by the payment collaborator and may only be
// recorded by admins.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateOrderDetailsCommandHandler(uowFactory UoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	actor := cmd.Actor()
	orderRepo := uow.OrderRepository()
	o, err := lockOrderFor(ctx, orderRepo, actor, cmd.OrderID(), "change")
	if err != nil {
		return err
	}

	if cmd.PaymentStatus() != nil && !actor.IsAdmin() {
		return errs.NewForbiddenError("user "+actor.ID().String(), "record the payment status of order "+o.ID().String())
	}

	if addressID := cmd.AddressID(); addressID != nil {
		addr, err := uow.AddressRepository().Get(ctx, *addressID)
		if err != nil {
			return err
		}
		if !addr.BelongsTo(o.UserID()) {
			return errs.NewForbiddenError("user "+actor.ID().String(), "deliver order "+o.ID().String()+" to address "+addr.ID().String())
		}
		if err = o.AttachAddress(addr.ID()); err != nil {
			return err
		}
	}

	if err = o.UpdatePayment(cmd.PaymentMode(), cmd.PaymentStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
