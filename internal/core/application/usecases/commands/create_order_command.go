package commands

import (
	"errors"
	"fmt"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested line of a new order.
type OrderLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a customer placing an order against an address.
// The owner of the order is always the acting user; prices are never taken from the request.
//
// Lines referencing the same item are merged into one line with the summed quantity.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(currentUser, orderID, addressID, nil, order.Cash,
//	    []OrderLine{{ItemID: paneerID, Quantity: 3}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       *identity.User
	orderID     kernel.UUID
	addressID   kernel.UUID
	menuID      *kernel.UUID
	paymentMode order.PaymentMode
	lines       []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. An empty paymentMode defaults to CASH.
func NewCreateOrderCommand(
	actor *identity.User,
	orderID, addressID kernel.UUID,
	menuID *kernel.UUID,
	paymentMode order.PaymentMode,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:       actor,
		orderID:     orderID,
		addressID:   addressID,
		paymentMode: paymentMode,
		guard:       guard.NewConstructorGuard(),
	}
	if cmd.paymentMode == "" {
		cmd.paymentMode = order.Cash
	}

	var menuErr error
	if menuID != nil {
		menuErr = menuID.Validate()
		id := *menuID
		cmd.menuID = &id
	}

	if err := errors.Join(
		validateActor(actor),
		orderID.Validate(),
		addressID.Validate(),
		menuErr,
		cmd.paymentMode.Validate(),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() *identity.User          { return c.actor }
func (c CreateOrderCommand) OrderID() kernel.UUID           { return c.orderID }
func (c CreateOrderCommand) AddressID() kernel.UUID         { return c.addressID }
func (c CreateOrderCommand) MenuID() *kernel.UUID           { return c.menuID }
func (c CreateOrderCommand) PaymentMode() order.PaymentMode { return c.paymentMode }

// Lines returns the merged lines in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	merged := make([]OrderLine, 0, len(lines))
	index := make(map[string]int, len(lines))

	for i, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("line %d: %w", i, err))
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"lines",
				fmt.Errorf("line %d: quantity %d is not greater than 0", i, line.Quantity),
			)
		}
		if at, ok := index[line.ItemID.String()]; ok {
			merged[at].Quantity += line.Quantity
			continue
		}
		index[line.ItemID.String()] = len(merged)
		merged = append(merged, line)
	}

	c.lines = merged
	return nil
}
