package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a dish on a menu.
//
// Stock is the only contended value of the platform. It changes exclusively through
// UpdateStock so that the non-negative invariant and the actor attribution are enforced
// in one place, whether the change comes from an admin edit or from the order workflow.
type Item struct {
	id          kernel.UUID
	menuID      kernel.UUID
	name        string
	details     string
	price       kernel.Money
	stock       int
	isVeg       bool
	isAvailable bool
	createdBy   kernel.Actor
	updatedBy   kernel.Actor
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// ItemState carries every persisted attribute of an Item. It is used to restore items
// from storage.
type ItemState struct {
	ID          kernel.UUID
	MenuID      kernel.UUID
	Name        string
	Details     string
	Price       kernel.Money
	Stock       int
	IsVeg       bool
	IsAvailable bool
	CreatedBy   kernel.Actor
	UpdatedBy   kernel.Actor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem creates an Item on menuID.
//
// Example:
//
//	item, err := catalog.NewItem(kernel.NewUUID(), menu.ID(), "Paneer Tikka", "",
//	    kernel.MustMoney("100"), 5, true, true, admin.Actor())
func NewItem(
	id, menuID kernel.UUID,
	name, details string,
	price kernel.Money,
	stock int,
	isVeg, isAvailable bool,
	actor kernel.Actor,
) (*Item, error) {
	now := time.Now().UTC()
	return RestoreItem(ItemState{
		ID:          id,
		MenuID:      menuID,
		Name:        name,
		Details:     details,
		Price:       price,
		Stock:       stock,
		IsVeg:       isVeg,
		IsAvailable: isAvailable,
		CreatedBy:   actor,
		UpdatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// RestoreItem rebuilds an Item read back from storage.
func RestoreItem(s ItemState) (*Item, error) {
	i := &Item{
		id:          s.ID,
		menuID:      s.MenuID,
		details:     strings.TrimSpace(s.Details),
		isVeg:       s.IsVeg,
		isAvailable: s.IsAvailable,
		createdBy:   s.CreatedBy,
		updatedBy:   s.UpdatedBy,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.MenuID.Validate(),
		i.setName(s.Name),
		i.setPrice(s.Price),
		i.setStock(s.Stock),
		s.CreatedBy.Validate(),
		s.UpdatedBy.Validate(),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) MenuID() kernel.UUID     { return i.menuID }
func (i *Item) Name() string            { return i.name }
func (i *Item) Details() string         { return i.details }
func (i *Item) Price() kernel.Money     { return i.price }
func (i *Item) Stock() int              { return i.stock }
func (i *Item) IsVeg() bool             { return i.isVeg }
func (i *Item) IsAvailable() bool       { return i.isAvailable }
func (i *Item) CreatedBy() kernel.Actor { return i.createdBy }
func (i *Item) UpdatedBy() kernel.Actor { return i.updatedBy }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }

// UpdateStock sets the stock to newStock on behalf of actor. A negative target is an
// InvalidArgument error and leaves the item untouched.
func (i *Item) UpdateStock(newStock int, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := i.setStock(newStock); err != nil {
		return err
	}
	i.touch(actor)
	return nil
}

// SetAvailability toggles whether the item may be ordered.
func (i *Item) SetAvailability(available bool, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	i.isAvailable = available
	i.touch(actor)
	return nil
}

// UpdatePrice changes the live price. Prices already captured on order lines keep their value.
func (i *Item) UpdatePrice(price kernel.Money, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := i.setPrice(price); err != nil {
		return err
	}
	i.touch(actor)
	return nil
}

// EnsureOrderable checks that the item is available and that quantity more units are in stock.
// Both failures are InvalidState.
func (i *Item) EnsureOrderable(quantity int) error {
	if !i.isAvailable {
		return errs.NewStateIsInvalidError("item "+i.id.String(), "item unavailable")
	}
	return i.EnsureInStock(quantity)
}

// EnsureInStock checks that quantity units can be deducted without going negative.
func (i *Item) EnsureInStock(quantity int) error {
	if i.stock < quantity {
		return errs.NewStateIsInvalidErrorWithCause(
			"item "+i.id.String(),
			"insufficient stock",
			fmt.Errorf("requested %d, in stock %d", quantity, i.stock),
		)
	}
	return nil
}

func (i *Item) touch(actor kernel.Actor) {
	i.updatedBy = actor
	i.updatedAt = time.Now().UTC()
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
