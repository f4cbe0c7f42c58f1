package ports

import (
	"context"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"
)

// MenuRepository defines the persistence contract for menus and their kitchen addresses.
type MenuRepository interface {
	// Add persists a new menu together with its kitchen addresses.
	Add(ctx context.Context, aggregate *catalog.Menu) error

	// Update persists changes to an existing menu.
	Update(ctx context.Context, aggregate *catalog.Menu) error

	// Get retrieves a menu by id. Returns an errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error)

	// CountByOwner returns how many menus ownerID has created.
	CountByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error)
}

// ItemRepository defines the persistence contract for catalog items.
//
// The ForUpdate variants lock the item rows until the surrounding unit of work ends.
// Every stock change must read the item through one of them.
type ItemRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, item *catalog.Item) error

	// Update persists the item, including its stock.
	Update(ctx context.Context, item *catalog.Item) error

	// Get retrieves an item without locking it.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)

	// GetForUpdate retrieves and locks one item.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.Item, error)

	// GetManyForUpdate retrieves and locks a set of items. Locks are taken in ascending id
	// order so that concurrent orders over overlapping items cannot deadlock. Missing ids are
	// reported as an errs.ObjectNotFoundError for the first absent id.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) (map[string]*catalog.Item, error)
}
