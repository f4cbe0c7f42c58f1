package commands

import (
	"context"
	"fmt"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/core/domain/services"
	"mealorders/internal/core/ports"
	"mealorders/internal/pkg/errs"
)

// lockOrderFor loads and locks an order the actor is about to change. A missing order is
// reported before a missing permission.
func lockOrderFor(
	ctx context.Context,
	repo ports.OrderRepository,
	actor *identity.User,
	orderID kernel.UUID,
	action string,
) (*order.Order, error) {
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessOrderOf(o.UserID()) {
		return nil, errs.NewForbiddenError("user "+actor.ID().String(), action+" order "+orderID.String())
	}
	return o, nil
}

// authorizeMenuEdit allows the menu owner and platform administrators.
func authorizeMenuEdit(menu *catalog.Menu, actor *identity.User, action string) error {
	if actor.IsSuperAdmin() || (actor.IsAdmin() && menu.IsOwnedBy(actor.ID())) {
		return nil
	}
	return errs.NewForbiddenError("user "+actor.ID().String(), action+" on menu "+menu.ID().String())
}

// loadEditableItem locks an item and checks that actor may edit it.
func loadEditableItem(
	ctx context.Context,
	uow CatalogUoW,
	actor *identity.User,
	itemID kernel.UUID,
	action string,
) (*catalog.Item, error) {
	item, err := uow.ItemRepository().GetForUpdate(ctx, itemID)
	if err != nil {
		return nil, err
	}
	menu, err := uow.MenuRepository().Get(ctx, item.MenuID())
	if err != nil {
		return nil, err
	}
	if err = authorizeMenuEdit(menu, actor, action); err != nil {
		return nil, err
	}
	return item, nil
}

// ensureOrderableMenus checks the menus behind items: every item must sit on an active menu
// and, when the order names a menu, on that menu. Each menu is read once.
func ensureOrderableMenus(
	ctx context.Context,
	repo ports.MenuRepository,
	orderMenuID *kernel.UUID,
	items ...*catalog.Item,
) error {
	active := make(map[string]bool, 1)
	for _, item := range items {
		if orderMenuID != nil && !item.MenuID().IsEqual(*orderMenuID) {
			return errs.NewValueIsInvalidErrorWithCause("itemId", fmt.Errorf(
				"item %s belongs to menu %s, not to menu %s of the order",
				item.ID(), item.MenuID(), *orderMenuID))
		}

		key := item.MenuID().String()
		isActive, seen := active[key]
		if !seen {
			menu, err := repo.Get(ctx, item.MenuID())
			if err != nil {
				return err
			}
			isActive = menu.IsActive()
			active[key] = isActive
		}
		if !isActive {
			return errs.NewStateIsInvalidError("item "+item.ID().String(), "menu "+key+" is not active")
		}
	}
	return nil
}

// restoreOrderStock puts back the quantities of every line of o and stores the items.
func restoreOrderStock(ctx context.Context, repo ports.ItemRepository, o *order.Order) error {
	lines := o.Items()
	if len(lines) == 0 {
		return nil
	}

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID())
	}
	items, err := repo.GetManyForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	if err = services.NewStockKeeper().RestoreLines(lines, items); err != nil {
		return err
	}
	for _, line := range lines {
		if err = repo.Update(ctx, items[line.ItemID().String()]); err != nil {
			return err
		}
	}
	return nil
}

func validateActor(actor *identity.User) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}
