package queries

import (
	"context"
	"time"

	"mealorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemView is a catalog item as the read side sees it.
type ItemView struct {
	ID          kernel.UUID
	MenuID      kernel.UUID
	Name        string
	Details     string
	Price       kernel.Money
	Stock       int
	IsVeg       bool
	IsAvailable bool
	CreatedBy   kernel.Actor
	UpdatedBy   kernel.Actor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const selectItemViews = `
	SELECT
		id, menu_id, name, COALESCE(details, ''), price, stock, is_veg, is_available,
		created_by, updated_by, created_at, updated_at
	FROM items
`

func findItemViews(ctx context.Context, db *gorm.DB, where, orderBy string, args ...any) ([]ItemView, error) {
	rows, err := db.WithContext(ctx).Raw(selectItemViews+" WHERE "+where+" ORDER BY "+orderBy, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemView, 0)
	for rows.Next() {
		var (
			view                 ItemView
			id, menuID           uuid.UUID
			price                decimal.Decimal
			createdBy, updatedBy string
		)
		if err = rows.Scan(
			&id, &menuID, &view.Name, &view.Details, &price, &view.Stock, &view.IsVeg, &view.IsAvailable,
			&createdBy, &updatedBy, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.MenuID, err = kernel.UUIDFromBytes(menuID[:]); err != nil {
			return nil, err
		}
		if view.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		view.CreatedBy = kernel.Actor(createdBy)
		view.UpdatedBy = kernel.Actor(updatedBy)

		items = append(items, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
