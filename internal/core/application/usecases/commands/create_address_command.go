package commands

import (
	"errors"

	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand adds an address to the acting user's address book.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	actor     *identity.User
	addressID kernel.UUID
	fields    address.Fields

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand checks identifiers only. Field rules are enforced by address.NewAddress.
func NewCreateAddressCommand(actor *identity.User, addressID kernel.UUID, fields address.Fields) (CreateAddressCommand, error) {
	if err := errors.Join(validateActor(actor), addressID.Validate()); err != nil {
		return CreateAddressCommand{}, err
	}
	return CreateAddressCommand{
		actor:     actor,
		addressID: addressID,
		fields:    fields,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) Actor() *identity.User  { return c.actor }
func (c CreateAddressCommand) AddressID() kernel.UUID { return c.addressID }
func (c CreateAddressCommand) Fields() address.Fields { return c.fields }
