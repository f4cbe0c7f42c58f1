package services

import (
	"fmt"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"
)

// StockKeeper keeps Item.stock symmetric with the quantities held by orders.
//
// Example usage:
//
//	keeper := services.NewStockKeeper()
//	diff, err := o.AddItem(kernel.NewUUID(), item.ID(), 5, item.Price())
//	if err != nil {
//	    return err
//	}
//	if err := keeper.Adjust(item, diff); err != nil {
//	    return err // insufficient stock, the transaction is rolled back
//	}
type StockKeeper struct{}

// NewStockKeeper creates a StockKeeper.
func NewStockKeeper() StockKeeper {
	return StockKeeper{}
}

// Deduct takes quantity units out of stock. It fails with InvalidState when the item does
// not have that many units and leaves the item unchanged.
func (StockKeeper) Deduct(item *catalog.Item, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if err := item.EnsureInStock(quantity); err != nil {
		return err
	}
	return item.UpdateStock(item.Stock()-quantity, kernel.SystemActor)
}

// Restore puts quantity units back into stock.
func (StockKeeper) Restore(item *catalog.Item, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	return item.UpdateStock(item.Stock()+quantity, kernel.SystemActor)
}

// Adjust applies a quantity delta as returned by order.Order.AddItem: a positive diff is
// deducted, a negative diff is restored.
func (k StockKeeper) Adjust(item *catalog.Item, diff int) error {
	switch {
	case diff > 0:
		return k.Deduct(item, diff)
	case diff < 0:
		return k.Restore(item, -diff)
	default:
		return nil
	}
}

// RestoreLines puts back the quantity of every line of an order. items must contain every
// item the lines reference, keyed by item id string.
func (k StockKeeper) RestoreLines(lines []*order.OrderItem, items map[string]*catalog.Item) error {
	for _, line := range lines {
		item, ok := items[line.ItemID().String()]
		if !ok {
			return errs.NewObjectNotFoundError("itemID", line.ItemID())
		}
		if err := k.Restore(item, line.Quantity()); err != nil {
			return err
		}
	}
	return nil
}
