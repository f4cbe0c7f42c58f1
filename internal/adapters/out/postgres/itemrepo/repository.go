package itemrepo

import (
	"context"
	"slices"

	"mealorders/internal/adapters/out/postgres/pgerr"
	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add saves a new item.
func (r *GormItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "item "+item.ID().String(), "add item")
	}
	return nil
}

// Update saves every mutable column of an item. A stock value rejected by the
// chk_items_stock constraint surfaces as an InvalidState error.
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "details", "price", "stock", "is_veg", "is_available", "updated_by", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsCheckViolation(result.Error) {
			return errs.NewStateIsInvalidErrorWithCause("item "+item.ID().String(), "insufficient stock", result.Error)
		}
		return pgerr.Translate(result.Error, "item "+item.ID().String(), "update item")
	}
	if result.RowsAffected == 0 {
		return pgerr.Translate(gorm.ErrRecordNotFound, item.ID().String(), "item")
	}
	return nil
}

// Get retrieves an item by ID without locking it.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves an item and locks its row until the transaction ends.
func (r *GormItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetManyForUpdate locks every requested item row. Rows are selected and locked in ascending
// id order, which is the order PostgreSQL compares uuid values in and the order of
// kernel.UUID.Less.
//
// Example:
//
//	items, err := repo.GetManyForUpdate(ctx, []kernel.UUID{paneerID, naanID})
//	if errs.IsNotFound(err) {
//	    // one of the ids does not exist
//	}
//	paneer := items[paneerID.String()]
func (r *GormItemRepository) GetManyForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) (map[string]*catalog.Item, error) {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b kernel.UUID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	sorted = slices.CompactFunc(sorted, func(a, b kernel.UUID) bool { return a.IsEqual(b) })

	raw := make([]uuid.UUID, 0, len(sorted))
	for _, id := range sorted {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	result := make(map[string]*catalog.Item, len(sorted))
	if len(raw) == 0 {
		return result, nil
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, "items", "lock items")
	}

	for _, dto := range dtos {
		item, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		result[item.ID().String()] = item
	}

	for _, id := range sorted {
		if _, ok := result[id.String()]; !ok {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
	}

	return result, nil
}

func (r *GormItemRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, id.String(), "item")
	}
	return toDomain(dto)
}
