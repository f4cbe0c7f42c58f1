package userrepo

import (
	"context"

	"mealorders/internal/adapters/out/postgres/pgerr"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user.
func (r *GormUserRepository) Add(ctx context.Context, u *identity.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "user "+u.ID().String(), "add user")
	}
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a user and holds a row lock on it until the transaction ends.
func (r *GormUserRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormUserRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, id.String(), "user")
	}
	return toDomain(dto)
}
