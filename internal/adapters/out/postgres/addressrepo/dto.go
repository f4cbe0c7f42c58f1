// Package addressrepo persists the address book.
package addressrepo

import (
	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO is the row of the addresses table.
type AddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	Landmark     string    `gorm:"type:varchar(255);not null"`
	FlatOrBlock  string    `gorm:"type:varchar(64);not null"`
	City         string    `gorm:"type:varchar(128);not null"`
	Pincode      string    `gorm:"type:char(6);not null"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	f := a.Fields()
	return AddressDTO{
		ID:           a.ID().Bytes(),
		UserID:       a.UserID().Bytes(),
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		Landmark:     f.Landmark,
		FlatOrBlock:  f.FlatOrBlock,
		City:         f.City,
		Pincode:      f.Pincode,
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return address.RestoreAddress(id, userID, address.Fields{
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		Landmark:     dto.Landmark,
		FlatOrBlock:  dto.FlatOrBlock,
		City:         dto.City,
		Pincode:      dto.Pincode,
	})
}
