// Package address models the delivery address book. An address belongs to one user
// and is referenced, never owned, by orders. Addresses are immutable after creation so
// that an order keeps pointing at the destination it was placed for.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// Fields carries the postal part of an address.
type Fields struct {
	AddressLine1 string
	AddressLine2 string
	Landmark     string
	FlatOrBlock  string
	City         string
	Pincode      string
}

// Address is a delivery destination owned by a user.
type Address struct {
	id     kernel.UUID
	userID kernel.UUID
	fields Fields
	guard  guard.ConstructorGuard
}

// NewAddress validates and creates an address. Line 2 is optional, everything else is required
// and the pincode must be six digits.
func NewAddress(id, userID kernel.UUID, fields Fields) (*Address, error) {
	fields = Fields{
		AddressLine1: strings.TrimSpace(fields.AddressLine1),
		AddressLine2: strings.TrimSpace(fields.AddressLine2),
		Landmark:     strings.TrimSpace(fields.Landmark),
		FlatOrBlock:  strings.TrimSpace(fields.FlatOrBlock),
		City:         strings.TrimSpace(fields.City),
		Pincode:      strings.TrimSpace(fields.Pincode),
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		required("addressLine1", fields.AddressLine1),
		required("landmark", fields.Landmark),
		required("flatOrBlock", fields.FlatOrBlock),
		required("city", fields.City),
		validatePincode(fields.Pincode),
	); err != nil {
		return nil, err
	}

	return &Address{
		id:     id,
		userID: userID,
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreAddress rebuilds an address read back from storage.
func RestoreAddress(id, userID kernel.UUID, fields Fields) (*Address, error) {
	return NewAddress(id, userID, fields)
}

// Validate ensures the Address was built through a constructor.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() kernel.UUID     { return a.id }
func (a *Address) UserID() kernel.UUID { return a.userID }
func (a *Address) Fields() Fields      { return a.fields }

// BelongsTo reports whether the address is owned by userID.
func (a *Address) BelongsTo(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validatePincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	if !pincodePattern.MatchString(pincode) {
		return errs.NewValueIsInvalidErrorWithCause("pincode", fmt.Errorf("%q is not six digits", pincode))
	}
	return nil
}
