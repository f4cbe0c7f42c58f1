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

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// ErrMenuIsNotConstructed is returned when validating a zero-value Menu.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu groups the items an admin sells. Inactive menus stay in storage but are hidden
// from customers.
//
// Example:
//
//	kitchen, _ := catalog.NewKitchenAddress(kernel.NewUUID(), "Plot 7", "", "Pune", "411001")
//	menu, err := catalog.NewMenu(kernel.NewUUID(), admin.ID(), "Thali House", "North Indian", 4.5,
//	    []*catalog.KitchenAddress{kitchen}, admin.Actor())
type Menu struct {
	id               kernel.UUID
	ownerID          kernel.UUID
	name             string
	details          string
	rating           float64
	isActive         bool
	kitchenAddresses []*KitchenAddress
	createdBy        kernel.Actor
	updatedBy        kernel.Actor
	createdAt        time.Time
	updatedAt        time.Time
	guard            guard.ConstructorGuard
}

// NewMenu creates an active Menu owned by ownerID.
func NewMenu(
	id, ownerID kernel.UUID,
	name, details string,
	rating float64,
	kitchenAddresses []*KitchenAddress,
	actor kernel.Actor,
) (*Menu, error) {
	now := time.Now().UTC()
	return RestoreMenu(id, ownerID, name, details, rating, true, kitchenAddresses, actor, actor, now, now)
}

// RestoreMenu rebuilds a Menu read back from storage.
func RestoreMenu(
	id, ownerID kernel.UUID,
	name, details string,
	rating float64,
	isActive bool,
	kitchenAddresses []*KitchenAddress,
	createdBy, updatedBy kernel.Actor,
	createdAt, updatedAt time.Time,
) (*Menu, error) {
	m := &Menu{
		id:        id,
		ownerID:   ownerID,
		details:   strings.TrimSpace(details),
		isActive:  isActive,
		createdBy: createdBy,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		m.setName(name),
		m.setRating(rating),
		m.setKitchenAddresses(kitchenAddresses),
		createdBy.Validate(),
		updatedBy.Validate(),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Menu was built through a constructor.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID         { return m.id }
func (m *Menu) OwnerID() kernel.UUID    { return m.ownerID }
func (m *Menu) Name() string            { return m.name }
func (m *Menu) Details() string         { return m.details }
func (m *Menu) Rating() float64         { return m.rating }
func (m *Menu) IsActive() bool          { return m.isActive }
func (m *Menu) CreatedBy() kernel.Actor { return m.createdBy }
func (m *Menu) UpdatedBy() kernel.Actor { return m.updatedBy }
func (m *Menu) CreatedAt() time.Time    { return m.createdAt }
func (m *Menu) UpdatedAt() time.Time    { return m.updatedAt }

// KitchenAddresses returns a copy of the kitchen list.
func (m *Menu) KitchenAddresses() []*KitchenAddress {
	out := make([]*KitchenAddress, len(m.kitchenAddresses))
	copy(out, m.kitchenAddresses)
	return out
}

// IsOwnedBy reports whether userID created this menu.
func (m *Menu) IsOwnedBy(userID kernel.UUID) bool {
	return m.ownerID.IsEqual(userID)
}

// SetActive shows or hides the menu.
func (m *Menu) SetActive(active bool, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	m.isActive = active
	m.touch(actor)
	return nil
}

// UpdateRating replaces the rating, which must stay within [MinRating, MaxRating].
func (m *Menu) UpdateRating(rating float64, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := m.setRating(rating); err != nil {
		return err
	}
	m.touch(actor)
	return nil
}

func (m *Menu) touch(actor kernel.Actor) {
	m.updatedBy = actor
	m.updatedAt = time.Now().UTC()
}

func (m *Menu) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Menu) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	m.rating = rating
	return nil
}

func (m *Menu) setKitchenAddresses(addresses []*KitchenAddress) error {
	for i, a := range addresses {
		if err := a.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("kitchenAddresses", fmt.Errorf("entry %d: %w", i, err))
		}
	}
	m.kitchenAddresses = append([]*KitchenAddress(nil), addresses...)
	return nil
}
