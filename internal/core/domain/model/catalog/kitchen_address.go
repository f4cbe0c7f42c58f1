package catalog

import (
	"errors"
	"strings"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

// ErrKitchenAddressIsNotConstructed is returned when validating a zero-value KitchenAddress.
var ErrKitchenAddressIsNotConstructed = errors.New("KitchenAddress must be created via NewKitchenAddress constructor")

// KitchenAddress is a place where a menu's meals are prepared. It lives and dies with its Menu.
type KitchenAddress struct {
	id           kernel.UUID
	addressLine1 string
	addressLine2 string
	city         string
	pincode      string
	guard        guard.ConstructorGuard
}

// NewKitchenAddress creates a KitchenAddress. Line 2 is optional.
func NewKitchenAddress(id kernel.UUID, addressLine1, addressLine2, city, pincode string) (*KitchenAddress, error) {
	k := &KitchenAddress{
		id:           id,
		addressLine1: strings.TrimSpace(addressLine1),
		addressLine2: strings.TrimSpace(addressLine2),
		city:         strings.TrimSpace(city),
		pincode:      strings.TrimSpace(pincode),
		guard:        guard.NewConstructorGuard(),
	}

	var missing []error
	if k.addressLine1 == "" {
		missing = append(missing, errs.NewValueIsRequiredError("addressLine1"))
	}
	if k.city == "" {
		missing = append(missing, errs.NewValueIsRequiredError("city"))
	}
	if k.pincode == "" {
		missing = append(missing, errs.NewValueIsRequiredError("pincode"))
	}
	if err := errors.Join(append([]error{id.Validate()}, missing...)...); err != nil {
		return nil, err
	}

	return k, nil
}

// Validate ensures the KitchenAddress was built through a constructor.
func (k *KitchenAddress) Validate() error {
	if k == nil {
		return ErrKitchenAddressIsNotConstructed
	}
	return k.guard.Validate(ErrKitchenAddressIsNotConstructed)
}

func (k *KitchenAddress) ID() kernel.UUID      { return k.id }
func (k *KitchenAddress) AddressLine1() string { return k.addressLine1 }
func (k *KitchenAddress) AddressLine2() string { return k.addressLine2 }
func (k *KitchenAddress) City() string         { return k.city }
func (k *KitchenAddress) Pincode() string      { return k.pincode }
