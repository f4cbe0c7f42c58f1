// Package userrepo persists the users known to the order core.
package userrepo

import (
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role  string    `gorm:"type:varchar(16);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:    u.ID().Bytes(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  string(u.Role()),
	}
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return identity.RestoreUser(id, dto.Name, dto.Email, role)
}
