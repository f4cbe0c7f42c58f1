package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand changes the payment details or the delivery address of an order.
// Nil fields are left unchanged. Status is never changed through this command.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	actor         *identity.User
	orderID       kernel.UUID
	paymentMode   *order.PaymentMode
	paymentStatus *order.PaymentStatus
	addressID     *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(
	actor *identity.User,
	orderID kernel.UUID,
	paymentMode *order.PaymentMode,
	paymentStatus *order.PaymentStatus,
	addressID *kernel.UUID,
) (UpdateOrderDetailsCommand, error) {
	var fieldErrs []error
	if paymentMode != nil {
		fieldErrs = append(fieldErrs, paymentMode.Validate())
	}
	if paymentStatus != nil {
		fieldErrs = append(fieldErrs, paymentStatus.Validate())
	}
	if addressID != nil {
		fieldErrs = append(fieldErrs, addressID.Validate())
	}
	if paymentMode == nil && paymentStatus == nil && addressID == nil {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("paymentMode, paymentStatus or addressID"))
	}

	if err := errors.Join(append([]error{validateActor(actor), orderID.Validate()}, fieldErrs...)...); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return UpdateOrderDetailsCommand{
		actor:         actor,
		orderID:       orderID,
		paymentMode:   paymentMode,
		paymentStatus: paymentStatus,
		addressID:     addressID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) Actor() *identity.User              { return c.actor }
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID               { return c.orderID }
func (c UpdateOrderDetailsCommand) PaymentMode() *order.PaymentMode     { return c.paymentMode }
func (c UpdateOrderDetailsCommand) PaymentStatus() *order.PaymentStatus { return c.paymentStatus }
func (c UpdateOrderDetailsCommand) AddressID() *kernel.UUID            { return c.addressID }
