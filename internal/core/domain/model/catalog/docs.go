// Package catalog provides the menu and item entities of the meal ordering platform.
// It is the stock and availability authority that order orchestration consults and mutates.
//
// The package includes:
//   - Menu: The aggregate root grouping an admin's items and kitchen addresses
//   - KitchenAddress: An entity owned by a Menu describing where meals are cooked
//   - Item: A sellable dish with price, stock, availability and veg flag
//
// Key business rules:
//   - Menu rating is between 0 and 5 inclusive
//   - Item price and stock are never negative
//   - Item.UpdateStock is the only way to change stock, and every change is attributed to an actor
//   - Automated stock adjustments made by the order workflow use kernel.SystemActor
package catalog
