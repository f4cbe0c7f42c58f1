package queries

import (
	"context"
	"errors"
	"strings"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ItemFilter narrows a menu listing. A nil Veg means both veg and non-veg items.
type ItemFilter struct {
	AvailableOnly bool
	Veg           *bool
}

// ListMenuItemsQuery lists the items of one menu ordered by name.
//
// Example:
//
//	veg := true
//	query, _ := NewListMenuItemsQuery(menuID, ItemFilter{AvailableOnly: true, Veg: &veg})
//	items, err := handler.Handle(ctx, query)
type ListMenuItemsQuery struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID
	filter ItemFilter
	guard  guard.ConstructorGuard
}

func NewListMenuItemsQuery(menuID kernel.UUID, filter ItemFilter) (ListMenuItemsQuery, error) {
	if err := menuID.Validate(); err != nil {
		return ListMenuItemsQuery{}, err
	}
	if filter.Veg != nil {
		veg := *filter.Veg
		filter.Veg = &veg
	}
	return ListMenuItemsQuery{menuID: menuID, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) MenuID() kernel.UUID { return q.menuID }
func (q ListMenuItemsQuery) Filter() ItemFilter  { return q.filter }

// ListMenuItemsQueryHandler lists menu items.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle returns the matching items. An unknown menu yields an empty list.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"menu_id = ?"}
	args := []any{query.MenuID().Bytes()}

	filter := query.Filter()
	if filter.AvailableOnly {
		conditions = append(conditions, "is_available")
	}
	if filter.Veg != nil {
		conditions = append(conditions, "is_veg = ?")
		args = append(args, *filter.Veg)
	}

	return findItemViews(ctx, h.db, strings.Join(conditions, " AND "), "name, id", args...)
}
