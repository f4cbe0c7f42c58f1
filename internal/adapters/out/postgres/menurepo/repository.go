package menurepo

import (
	"context"

	"mealorders/internal/adapters/out/postgres/pgerr"
	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add saves a new menu and its kitchen addresses.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *catalog.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "menu "+aggregate.ID().String(), "add menu")
	}
	return nil
}

// Update saves the mutable columns of a menu. Kitchen addresses never change after creation.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *catalog.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "details", "rating", "is_active", "updated_by", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "menu "+aggregate.ID().String(), "update menu")
	}
	if result.RowsAffected == 0 {
		return pgerr.Translate(gorm.ErrRecordNotFound, aggregate.ID().String(), "menu")
	}
	return nil
}

// Get retrieves a menu by ID with its kitchen addresses.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	err := r.db.WithContext(ctx).
		Preload("KitchenAddresses", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, id.String(), "menu")
	}
	return toDomain(dto)
}

// CountByOwner returns the number of menus owned by ownerID.
func (r *GormMenuRepository) CountByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MenuDTO{}).Where("owner_id = ?", ownerID.Bytes()).Count(&count).Error
	if err != nil {
		return 0, pgerr.Translate(err, ownerID.String(), "count menus")
	}
	return count, nil
}
