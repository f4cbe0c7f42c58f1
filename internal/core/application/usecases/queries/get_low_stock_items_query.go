package queries

import (
	"context"
	"errors"
	"fmt"

	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
	"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
)

// GetLowStockItemsQuery finds available items whose stock fell below a threshold.
type GetLowStockItemsQuery struct { //nolint:recvcheck //using for validation
	threshold int
	guard     guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates the query. The threshold must be positive.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold <= 0 {
		return GetLowStockItemsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}
	return GetLowStockItemsQuery{threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

func (q GetLowStockItemsQuery) Threshold() int { return q.threshold }

// GetLowStockItemsQueryHandler runs the low stock report.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle returns available items with stock below the threshold, lowest stock first.
func (h GetLowStockItemsQueryHandler) Handle(ctx context.Context, query GetLowStockItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findItemViews(ctx, h.db, "is_available AND stock < ?", "stock, name, id", query.Threshold())
}
