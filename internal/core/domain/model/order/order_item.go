package order

import (
	"errors"
	"fmt"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when validating a zero-value OrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one line of an order. The price is captured when the line is created and
// never follows later changes of the item's live price.
type OrderItem struct {
	id              kernel.UUID
	itemID          kernel.UUID
	quantity        int
	priceAtPurchase kernel.Money
	guard           guard.ConstructorGuard
}

// NewOrderItem creates a line for quantity units of itemID at priceAtPurchase.
func NewOrderItem(id, itemID kernel.UUID, quantity int, priceAtPurchase kernel.Money) (*OrderItem, error) {
	oi := &OrderItem{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		id.Validate(),
		itemID.Validate(),
		oi.setQuantity(quantity),
		oi.setPrice(priceAtPurchase),
	); err != nil {
		return nil, err
	}
	oi.id = id
	oi.itemID = itemID
	return oi, nil
}

// RestoreOrderItem rebuilds a line read back from storage.
func RestoreOrderItem(id, itemID kernel.UUID, quantity int, priceAtPurchase kernel.Money) (*OrderItem, error) {
	return NewOrderItem(id, itemID, quantity, priceAtPurchase)
}

// Validate ensures the OrderItem was built through a constructor.
func (oi *OrderItem) Validate() error {
	if oi == nil {
		return ErrOrderItemIsNotConstructed
	}
	return oi.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (oi *OrderItem) ID() kernel.UUID               { return oi.id }
func (oi *OrderItem) ItemID() kernel.UUID           { return oi.itemID }
func (oi *OrderItem) Quantity() int                 { return oi.quantity }
func (oi *OrderItem) PriceAtPurchase() kernel.Money { return oi.priceAtPurchase }

// Total is quantity * priceAtPurchase.
func (oi *OrderItem) Total() kernel.Money {
	return oi.priceAtPurchase.Times(oi.quantity)
}

func (oi *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	oi.quantity = quantity
	return nil
}

func (oi *OrderItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("priceAtPurchase", err)
	}
	oi.priceAtPurchase = price
	return nil
}
