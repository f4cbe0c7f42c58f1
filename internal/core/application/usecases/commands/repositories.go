// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, runs inside one unit of work and either commits
// all of its writes or none of them. Notifications go out only after a successful commit.
package commands

import (
	"context"

	"mealorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW manages transactions for user registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// AddressUoW manages transactions for the address book.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// CatalogUoW manages transactions that edit menus and items.
	CatalogUoW interface {
		TxManager
		MenuRepoFactory
		ItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions across every aggregate. Order orchestration uses it because a
	// single operation reads addresses and users, changes items and writes the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items, err := uow.ItemRepository().GetManyForUpdate(ctx, ids)
	//   // ... mutate order and stock
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		AddressRepoFactory
		MenuRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
