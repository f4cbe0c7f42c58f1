// Package services provides domain services that coordinate business operations
// across more than one aggregate of the meal ordering platform.
//
// The package includes:
//   - StockKeeper: applies the stock side effects of order line changes to catalog items
//
// Every unit of quantity taken by an order is deducted from Item.stock exactly once and every
// unit released by an order is restored exactly once. StockKeeper is the only place where the
// order workflow changes stock, and it always does so through catalog.Item.UpdateStock with
// kernel.SystemActor.
package services
