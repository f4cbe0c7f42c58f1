// Package itemrepo persists catalog items. The stock column carries a CHECK constraint so
// that no write can leave it negative, whatever path the write took.
package itemrepo

import (
	"time"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO is the row of the items table.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Details     string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"type:int;not null;check:chk_items_stock,stock >= 0"`
	IsVeg       bool            `gorm:"not null"`
	IsAvailable bool            `gorm:"not null;index"`
	CreatedBy   string          `gorm:"type:varchar(64);not null"`
	UpdatedBy   string          `gorm:"type:varchar(64);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(i *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID().Bytes(),
		MenuID:      i.MenuID().Bytes(),
		Name:        i.Name(),
		Details:     i.Details(),
		Price:       i.Price().Decimal(),
		Stock:       i.Stock(),
		IsVeg:       i.IsVeg(),
		IsAvailable: i.IsAvailable(),
		CreatedBy:   i.CreatedBy().String(),
		UpdatedBy:   i.UpdatedBy().String(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

func toDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(catalog.ItemState{
		ID:          id,
		MenuID:      menuID,
		Name:        dto.Name,
		Details:     dto.Details,
		Price:       price,
		Stock:       dto.Stock,
		IsVeg:       dto.IsVeg,
		IsAvailable: dto.IsAvailable,
		CreatedBy:   kernel.Actor(dto.CreatedBy),
		UpdatedBy:   kernel.Actor(dto.UpdatedBy),
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
