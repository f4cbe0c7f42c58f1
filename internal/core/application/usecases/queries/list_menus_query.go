package queries

import (
	"context"
	"errors"
	"strings"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListMenusQueryIsNotConstructed = errors.New("ListMenusQuery must be created via NewListMenusQuery constructor")

// MenuFilter narrows the menu listing. A nil OwnerID lists menus of every owner.
type MenuFilter struct {
	ActiveOnly bool
	OwnerID    *kernel.UUID
}

// ListMenusQuery lists menus ordered by name.
//
// Example:
//
//	query, _ := NewListMenusQuery(MenuFilter{ActiveOnly: true})
//	menus, err := handler.Handle(ctx, query)
type ListMenusQuery struct { //nolint:recvcheck //using for validation
	filter MenuFilter
	guard  guard.ConstructorGuard
}

func NewListMenusQuery(filter MenuFilter) (ListMenusQuery, error) {
	if filter.OwnerID != nil {
		if err := filter.OwnerID.Validate(); err != nil {
			return ListMenusQuery{}, err
		}
		ownerID := *filter.OwnerID
		filter.OwnerID = &ownerID
	}
	return ListMenusQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenusQuery) Validate() error {
	return q.guard.Validate(ErrListMenusQueryIsNotConstructed)
}

func (q ListMenusQuery) Filter() MenuFilter { return q.filter }

// ListMenusQueryHandler lists menus.
type ListMenusQueryHandler struct {
	db *gorm.DB
}

func NewListMenusQueryHandler(db *gorm.DB) ListMenusQueryHandler {
	return ListMenusQueryHandler{db: db}
}

// Handle returns the matching menus. An unknown owner yields an empty list.
func (h ListMenusQueryHandler) Handle(ctx context.Context, query ListMenusQuery) ([]MenuView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"TRUE"}
	args := make([]any, 0, 1)

	filter := query.Filter()
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active")
	}
	if filter.OwnerID != nil {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, filter.OwnerID.Bytes())
	}

	return findMenuViews(ctx, h.db, strings.Join(conditions, " AND "), args...)
}
