package postgres

import (
	"fmt"

	"mealorders/internal/adapters/out/postgres/addressrepo"
	"mealorders/internal/adapters/out/postgres/itemrepo"
	"mealorders/internal/adapters/out/postgres/menurepo"
	"mealorders/internal/adapters/out/postgres/orderrepo"
	"mealorders/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&addressrepo.AddressDTO{},
		&menurepo.MenuDTO{},
		&menurepo.KitchenAddressDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema, including the CHECK constraints that keep
// items.stock and order line quantities in range.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Tables lists the table names of Models, children first, for TRUNCATE in tests and tooling.
func Tables() []string {
	return []string{"order_items", "orders", "items", "kitchen_addresses", "menus", "addresses", "users"}
}
