// Package queries contains the read side of the order core. Queries go straight to the
// database with SQL and never load aggregates or take locks.
package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the persisted read shape of an order, joined with its owner, its delivery
// address and the catalog names of its items. Address fields are empty for a cart that has
// no address yet.
type OrderView struct {
	OrderID       kernel.UUID
	PaymentMode   order.PaymentMode
	PaymentStatus order.PaymentStatus
	OrderStatus   order.Status
	UserID        kernel.UUID
	UserName      string
	UserEmail     string
	AddressID     *kernel.UUID
	AddressLine1  string
	AddressLine2  string
	City          string
	Pincode       string
	MenuID        *kernel.UUID
	Items         []OrderLineView
	TotalAmount   kernel.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLineView is one line of an OrderView. Price is the price captured when the line was
// added, not the item's current price.
type OrderLineView struct {
	OrderItemID kernel.UUID
	ItemID      kernel.UUID
	ItemName    string
	Quantity    int
	Price       kernel.Money
	Total       kernel.Money
	Veg         bool
}

const selectOrderViews = `
	SELECT
		o.id,
		o.payment_mode,
		o.payment_status,
		o.status,
		o.user_id,
		COALESCE(u.name, ''),
		COALESCE(u.email, ''),
		o.address_id,
		COALESCE(a.address_line1, ''),
		COALESCE(a.address_line2, ''),
		COALESCE(a.city, ''),
		COALESCE(a.pincode, ''),
		o.menu_id,
		o.total_amount,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id
	LEFT JOIN addresses a ON a.id = o.address_id
`

// findOrderViews runs selectOrderViews with the given WHERE clause and attaches the lines of
// every order found. Orders come back newest first.
func findOrderViews(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(
		selectOrderViews+" WHERE "+where+" ORDER BY o.created_at DESC, o.id", args...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			view                        OrderView
			id, userID                  uuid.UUID
			addressID, menuID           uuid.NullUUID
			mode, paymentStatus, status string
			total                       decimal.Decimal
		)
		if err = rows.Scan(
			&id, &mode, &paymentStatus, &status,
			&userID, &view.UserName, &view.UserEmail,
			&addressID, &view.AddressLine1, &view.AddressLine2, &view.City, &view.Pincode,
			&menuID, &total, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if view.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if view.AddressID, err = nullableID(addressID); err != nil {
			return nil, err
		}
		if view.MenuID, err = nullableID(menuID); err != nil {
			return nil, err
		}
		if view.PaymentMode, err = order.ParsePaymentMode(mode); err != nil {
			return nil, err
		}
		if view.PaymentStatus, err = order.ParsePaymentStatus(paymentStatus); err != nil {
			return nil, err
		}
		if view.OrderStatus, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if view.TotalAmount, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		view.Items = make([]OrderLineView, 0)

		index[id] = len(views)
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return views, nil
	}
	if err = attachLines(ctx, db, views, index); err != nil {
		return nil, err
	}
	return views, nil
}

func attachLines(ctx context.Context, db *gorm.DB, views []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.id,
			oi.item_id,
			COALESCE(i.name, ''),
			oi.quantity,
			oi.price_at_purchase,
			COALESCE(i.is_veg, false)
		FROM order_items oi
		LEFT JOIN items i ON i.id = oi.item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line                OrderLineView
			orderID, id, itemID uuid.UUID
			price               decimal.Decimal
		)
		if err = rows.Scan(&orderID, &id, &itemID, &line.ItemName, &line.Quantity, &price, &line.Veg); err != nil {
			return err
		}

		at, ok := index[orderID]
		if !ok {
			return fmt.Errorf("order line %s belongs to unexpected order %s", id, orderID)
		}
		if line.OrderItemID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if line.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		if line.Price, err = kernel.NewMoney(price); err != nil {
			return err
		}
		line.Total = line.Price.Times(line.Quantity)

		views[at].Items = append(views[at].Items, line)
	}
	return rows.Err()
}

func nullableID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil //nolint:nilnil // NULL column
	}
	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// scanCount reads a single COUNT(*) row.
func scanCount(row *sql.Row) (int64, error) {
	var n int64
	err := row.Scan(&n)
	return n, err
}
