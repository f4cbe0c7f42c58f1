// Package order provides the Order aggregate of the meal ordering platform: the order
// itself, its owned line items and the fulfillment state machine.
//
// The package includes:
//   - Order: The aggregate root holding lines, payment details, status and the derived total
//   - OrderItem: A line item with a quantity and the price captured when the line was added
//   - Status: The fulfillment state machine PENDING -> CONFIRMED -> PREPARING -> OUT_FOR_DELIVERY -> DELIVERED,
//     with CANCELLED reachable from every state before OUT_FOR_DELIVERY
//   - PaymentMode and PaymentStatus: recorded, never processed
//
// Key business rules:
//   - An order holds at most one line per item; adding an item again changes that line's quantity
//   - Line quantities are always positive
//   - totalAmount equals the sum of quantity * priceAtPurchase after every mutation
//   - Lines may only change while the order is PENDING or CONFIRMED
//   - Stock effects are reported to the caller, never applied here; the catalog owns stock
package order
