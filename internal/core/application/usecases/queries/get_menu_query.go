package queries

import (
	"context"
	"errors"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMenuQueryIsNotConstructed = errors.New("GetMenuQuery must be created via NewGetMenuQuery constructor")

// GetMenuQuery reads one menu with its kitchens. Inactive menus are readable too.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetMenuQuery(menuID kernel.UUID) (GetMenuQuery, error) {
	if err := menuID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}
	return GetMenuQuery{menuID: menuID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) MenuID() kernel.UUID { return q.menuID }

type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (MenuView, error) {
	if err := query.Validate(); err != nil {
		return MenuView{}, err
	}

	menus, err := findMenuViews(ctx, h.db, "id = ?", query.MenuID().Bytes())
	if err != nil {
		return MenuView{}, err
	}
	if len(menus) == 0 {
		return MenuView{}, errs.NewObjectNotFoundError("menu", query.MenuID().String())
	}
	return menus[0], nil
}
