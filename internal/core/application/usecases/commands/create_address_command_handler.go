package commands

import (
	"context"

	"mealorders/internal/core/domain/model/address"
)

// CreateAddressCommandHandler stores a new address owned by the acting user.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{uowFactory: uowFactory}
}

func (h CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := address.NewAddress(cmd.AddressID(), cmd.Actor().ID(), cmd.Fields())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AddressRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
