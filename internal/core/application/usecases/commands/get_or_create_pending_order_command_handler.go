package commands

import (
	"context"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"
)

// GetOrCreatePendingOrderCommandHandler returns the user's cart, creating an empty one when
// the user has no PENDING order.
//
// The user row is locked for the duration of the transaction, so concurrent calls for the
// same user never both create a cart. When earlier data already holds several PENDING orders,
// the oldest one is returned.
type GetOrCreatePendingOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewGetOrCreatePendingOrderCommandHandler creates the cart handler.
func NewGetOrCreatePendingOrderCommandHandler(uowFactory UoWFactory) GetOrCreatePendingOrderCommandHandler {
	return GetOrCreatePendingOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the cart. Customers may only open their own cart.
func (h GetOrCreatePendingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd GetOrCreatePendingOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.UserRepository().GetForUpdate(ctx, cmd.UserID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !cmd.Actor().CanAccessOrderOf(owner.ID()) {
		return kernel.UUID{}, errs.NewForbiddenError("user "+cmd.Actor().ID().String(), "open the cart of "+owner.ID().String())
	}

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.FindOldestPendingByUser(ctx, owner.ID())
	if err == nil {
		return existing.ID(), nil
	}
	if !errs.IsNotFound(err) {
		return kernel.UUID{}, err
	}

	cart, err := order.NewCart(kernel.NewUUID(), owner.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = orderRepo.Add(ctx, cart); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return cart.ID(), nil
}
