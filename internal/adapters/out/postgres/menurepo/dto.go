// Package menurepo persists menus together with the kitchen addresses they own.
package menurepo

import (
	"time"

	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MenuDTO is the row of the menus table. Kitchen addresses are stored in their own table and
// removed with the menu.
type MenuDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name             string              `gorm:"type:varchar(255);not null"`
	Details          string              `gorm:"type:text"`
	Rating           float64             `gorm:"type:double precision;not null;check:chk_menus_rating,rating >= 0 AND rating <= 5"`
	IsActive         bool                `gorm:"not null"`
	CreatedBy        string              `gorm:"type:varchar(64);not null"`
	UpdatedBy        string              `gorm:"type:varchar(64);not null"`
	CreatedAt        time.Time           `gorm:"not null"`
	UpdatedAt        time.Time           `gorm:"not null"`
	KitchenAddresses []KitchenAddressDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// KitchenAddressDTO is the row of the kitchen_addresses table.
type KitchenAddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(128);not null"`
	Pincode      string    `gorm:"type:varchar(16);not null"`
}

func (KitchenAddressDTO) TableName() string {
	return "kitchen_addresses"
}

func fromDomain(m *catalog.Menu) MenuDTO {
	menuID := m.ID().Bytes()
	kitchens := make([]KitchenAddressDTO, 0, len(m.KitchenAddresses()))
	for _, k := range m.KitchenAddresses() {
		kitchens = append(kitchens, KitchenAddressDTO{
			ID:           k.ID().Bytes(),
			MenuID:       menuID,
			AddressLine1: k.AddressLine1(),
			AddressLine2: k.AddressLine2(),
			City:         k.City(),
			Pincode:      k.Pincode(),
		})
	}

	return MenuDTO{
		ID:               menuID,
		OwnerID:          m.OwnerID().Bytes(),
		Name:             m.Name(),
		Details:          m.Details(),
		Rating:           m.Rating(),
		IsActive:         m.IsActive(),
		CreatedBy:        m.CreatedBy().String(),
		UpdatedBy:        m.UpdatedBy().String(),
		CreatedAt:        m.CreatedAt(),
		UpdatedAt:        m.UpdatedAt(),
		KitchenAddresses: kitchens,
	}
}

func toDomain(dto MenuDTO) (*catalog.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	kitchens := make([]*catalog.KitchenAddress, 0, len(dto.KitchenAddresses))
	for _, k := range dto.KitchenAddresses {
		kitchenID, idErr := kernel.UUIDFromBytes(k.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		kitchen, kErr := catalog.NewKitchenAddress(kitchenID, k.AddressLine1, k.AddressLine2, k.City, k.Pincode)
		if kErr != nil {
			return nil, kErr
		}
		kitchens = append(kitchens, kitchen)
	}

	return catalog.RestoreMenu(
		id, ownerID,
		dto.Name, dto.Details,
		dto.Rating, dto.IsActive,
		kitchens,
		kernel.Actor(dto.CreatedBy), kernel.Actor(dto.UpdatedBy),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
