package queries

import (
	"context"
	"errors"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetItemQueryIsNotConstructed = errors.New("GetItemQuery must be created via NewGetItemQuery constructor")

// GetItemQuery reads one catalog item.
type GetItemQuery struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetItemQuery(itemID kernel.UUID) (GetItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemQuery{}, err
	}
	return GetItemQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

func (q GetItemQuery) ItemID() kernel.UUID { return q.itemID }

// GetItemQueryHandler reads items from the database.
type GetItemQueryHandler struct {
	db *gorm.DB
}

func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle returns the item or NotFound.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemView, error) {
	if err := query.Validate(); err != nil {
		return ItemView{}, err
	}

	items, err := findItemViews(ctx, h.db, "id = ?", "id", query.ItemID().Bytes())
	if err != nil {
		return ItemView{}, err
	}
	if len(items) == 0 {
		return ItemView{}, errs.NewObjectNotFoundError("item", query.ItemID().String())
	}
	return items[0], nil
}
