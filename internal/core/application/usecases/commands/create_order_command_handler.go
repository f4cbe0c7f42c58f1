package commands

import (
	"context"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/core/domain/services"
	"mealorders/internal/core/ports"
	"mealorders/internal/pkg/errs"
)

// CreateOrderCommandHandler places a new order.
//
// All preconditions (address ownership, item existence, menu membership, availability and
// stock) are checked against item rows locked for the whole transaction. Two customers racing
// for the last units of an item are therefore serialised: the second one sees the stock left by
// the first and fails with InvalidState instead of driving stock negative.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); errs.IsInvalidState(err) {
//	    // item unavailable or insufficient stock
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle validates every line, creates the PENDING order with prices captured from the
// catalog, deducts stock as SYSTEM and notifies the customer once the transaction committed.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	addr, err := uow.AddressRepository().Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !addr.BelongsTo(actor.ID()) {
		return errs.NewForbiddenError("user "+actor.ID().String(), "use address "+addr.ID().String())
	}

	if menuID := cmd.MenuID(); menuID != nil {
		menu, err := uow.MenuRepository().Get(ctx, *menuID)
		if err != nil {
			return err
		}
		if !menu.IsActive() {
			return errs.NewStateIsInvalidError("menu "+menuID.String(), "menu is not active")
		}
	}

	lines := cmd.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}

	itemRepo := uow.ItemRepository()
	items, err := itemRepo.GetManyForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	ordered := make([]*catalog.Item, 0, len(lines))
	for _, line := range lines {
		ordered = append(ordered, items[line.ItemID.String()])
	}
	if err = ensureOrderableMenus(ctx, uow.MenuRepository(), cmd.MenuID(), ordered...); err != nil {
		return err
	}
	for _, line := range lines {
		if err = items[line.ItemID.String()].EnsureOrderable(line.Quantity); err != nil {
			return err
		}
	}

	addressID := addr.ID()
	o, err := order.NewOrder(cmd.OrderID(), actor.ID(), &addressID, cmd.MenuID(), cmd.PaymentMode())
	if err != nil {
		return err
	}
	for _, line := range lines {
		item := items[line.ItemID.String()]
		if _, err = o.AddItem(kernel.NewUUID(), item.ID(), line.Quantity, item.Price()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	keeper := services.NewStockKeeper()
	for _, line := range lines {
		item := items[line.ItemID.String()]
		if err = keeper.Deduct(item, line.Quantity); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderCreated(ctx, o)
	return nil
}
