package ports

import (
	"context"

	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
)

// UserRepository reads users registered by the identity collaborator.
type UserRepository interface {
	Add(ctx context.Context, user *identity.User) error
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetForUpdate locks the user row. Cart creation uses it to serialise concurrent
	// requests of the same user.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.User, error)
}

// AddressRepository stores the address book.
type AddressRepository interface {
	Add(ctx context.Context, a *address.Address) error
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)
}
