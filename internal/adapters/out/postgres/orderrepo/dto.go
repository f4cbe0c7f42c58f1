// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order row and its order_items rows are always written and read together.
package orderrepo

import (
	"time"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// TotalAmount is stored for the read side; the aggregate recomputes it on load.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_user_status,priority:1"`
	AddressID     *uuid.UUID      `gorm:"type:uuid"`
	MenuID        *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentMode   string          `gorm:"type:varchar(16);not null"`
	PaymentStatus string          `gorm:"type:varchar(16);not null"`
	Status        string          `gorm:"type:varchar(32);not null;index:idx_orders_user_status,priority:2;index"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the lines in the order they were added.
type OrderItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position        int             `gorm:"not null"`
	Quantity        int             `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	lines := o.Items()
	items := make([]OrderItemDTO, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderItemDTO{
			ID:              line.ID().Bytes(),
			OrderID:         orderID,
			ItemID:          line.ItemID().Bytes(),
			Position:        i,
			Quantity:        line.Quantity(),
			PriceAtPurchase: line.PriceAtPurchase().Decimal(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		UserID:        o.UserID().Bytes(),
		AddressID:     optionalID(o.AddressID()),
		MenuID:        optionalID(o.MenuID()),
		PaymentMode:   string(o.PaymentMode()),
		PaymentStatus: string(o.PaymentStatus()),
		Status:        o.Status().String(),
		TotalAmount:   o.TotalAmount().Decimal(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         items,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := restoreOptionalID(dto.AddressID)
	if err != nil {
		return nil, err
	}
	menuID, err := restoreOptionalID(dto.MenuID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		line, lineErr := orderItemToDomain(itemDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		UserID:        userID,
		AddressID:     addressID,
		MenuID:        menuID,
		PaymentMode:   order.PaymentMode(dto.PaymentMode),
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Status:        status,
		Items:         lines,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func orderItemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.PriceAtPurchase)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrderItem(id, itemID, dto.Quantity, price)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
