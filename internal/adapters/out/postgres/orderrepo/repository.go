package orderrepo

import (
	"context"

	"mealorders/internal/adapters/out/postgres/pgerr"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order "+aggregate.ID().String(), "add order")
	}
	return nil
}

// Update saves the order columns and replaces the stored lines with the aggregate's lines.
// It must run inside the transaction that locked the order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	subject := "order " + aggregate.ID().String()

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("address_id", "menu_id", "payment_mode", "payment_status", "status", "total_amount", "updated_at").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, subject, "update order")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return pgerr.Translate(err, subject, "replace order lines")
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return pgerr.Translate(err, subject, "replace order lines")
		}
	}
	return nil
}

// Delete removes an order; its lines are removed by the cascading foreign key.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order "+id.String(), "delete order")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, r.db, id)
}

// GetForUpdate retrieves an order and locks its row. Lines are read after the lock is held.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindOldestPendingByUser returns the earliest created PENDING order of userID.
func (r *GormOrderRepository) FindOldestPendingByUser(ctx context.Context, userID kernel.UUID) (*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID.Bytes(), order.Pending.String()).
		Order("created_at, id").
		First(&dto).Error
	if err != nil {
		return nil, pgerr.Translate(err, "pending order of user "+userID.String(), "order")
	}

	if err = r.loadLines(ctx, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// FindOrderIDByLine returns the order owning orderItemID.
func (r *GormOrderRepository) FindOrderIDByLine(ctx context.Context, orderItemID kernel.UUID) (kernel.UUID, error) {
	if err := orderItemID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var line OrderItemDTO
	err := r.db.WithContext(ctx).Select("order_id").First(&line, "id = ?", orderItemID.Bytes()).Error
	if err != nil {
		return kernel.UUID{}, pgerr.Translate(err, orderItemID.String(), "order item")
	}
	return kernel.UUIDFromBytes(line.OrderID[:])
}

func (r *GormOrderRepository) load(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, id.String(), "order")
	}
	if err := r.loadLines(ctx, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormOrderRepository) loadLines(ctx context.Context, dto *OrderDTO) error {
	var lines []OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&lines).Error
	if err != nil {
		return pgerr.Translate(err, "order "+dto.ID.String(), "load order lines")
	}
	dto.Items = lines
	return nil
}
