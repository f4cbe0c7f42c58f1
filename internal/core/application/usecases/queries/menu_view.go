package queries

import (
	"context"
	"fmt"
	"time"

	"mealorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuView is a menu with its kitchen addresses.
type MenuView struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Name      string
	Details   string
	Rating    float64
	IsActive  bool
	Kitchens  []KitchenView
	CreatedBy kernel.Actor
	UpdatedBy kernel.Actor
	CreatedAt time.Time
	UpdatedAt time.Time
}

type KitchenView struct {
	ID           kernel.UUID
	AddressLine1 string
	AddressLine2 string
	City         string
	Pincode      string
}

const selectMenuViews = `
	SELECT
		id, owner_id, name, COALESCE(details, ''), rating, is_active,
		created_by, updated_by, created_at, updated_at
	FROM menus
`

const selectKitchenViews = `
	SELECT id, menu_id, address_line1, COALESCE(address_line2, ''), city, pincode
	FROM kitchen_addresses
	WHERE menu_id IN ?
	ORDER BY city, address_line1, id
`

func findMenuViews(ctx context.Context, db *gorm.DB, where string, args ...any) ([]MenuView, error) {
	db = db.WithContext(ctx)

	rows, err := db.Raw(selectMenuViews+" WHERE "+where+" ORDER BY name, id", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]MenuView, 0)
	for rows.Next() {
		var (
			view                 MenuView
			id, ownerID          uuid.UUID
			createdBy, updatedBy string
		)
		if err = rows.Scan(
			&id, &ownerID, &view.Name, &view.Details, &view.Rating, &view.IsActive,
			&createdBy, &updatedBy, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		view.CreatedBy = kernel.Actor(createdBy)
		view.UpdatedBy = kernel.Actor(updatedBy)
		view.Kitchens = make([]KitchenView, 0)
		menus = append(menus, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return menus, nil
	}

	if err = attachKitchens(db, menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func attachKitchens(db *gorm.DB, menus []MenuView) error {
	index := make(map[uuid.UUID]int, len(menus))
	ids := make([]uuid.UUID, 0, len(menus))
	for i := range menus {
		index[menus[i].ID.Bytes()] = i
		ids = append(ids, menus[i].ID.Bytes())
	}

	rows, err := db.Raw(selectKitchenViews, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kitchen    KitchenView
			id, menuID uuid.UUID
		)
		if err = rows.Scan(&id, &menuID, &kitchen.AddressLine1, &kitchen.AddressLine2, &kitchen.City,
			&kitchen.Pincode); err != nil {
			return err
		}

		at, ok := index[menuID]
		if !ok {
			return fmt.Errorf("kitchen %s belongs to unexpected menu %s", id, menuID)
		}
		if kitchen.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		menus[at].Kitchens = append(menus[at].Kitchens, kitchen)
	}
	return rows.Err()
}
