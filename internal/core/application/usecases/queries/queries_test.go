package queries_test

import (
	"testing"

	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role identity.Role) *identity.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := identity.NewUser(id, "User "+string(role), id.String()+"@example.com", role)
	require.NoError(t, err)
	return u
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(newActor(t, identity.RoleUser), kernel.NewUUID())

	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewGetOrderQuery(nil, kernel.NewUUID())
	assert.True(t, errs.IsInvalidArgument(err))

	_, err = queries.NewGetOrderQuery(newActor(t, identity.RoleUser), kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestListOrdersQuery_Constructors(t *testing.T) {
	admin := newActor(t, identity.RoleAdmin)

	byUser, err := queries.NewListOrdersByUserQuery(admin, kernel.NewUUID())
	require.NoError(t, err)
	assert.Equal(t, queries.ByUser, byUser.Filter())

	byStatus, err := queries.NewListOrdersByStatusQuery(admin, order.Preparing)
	require.NoError(t, err)
	assert.Equal(t, queries.ByStatus, byStatus.Filter())
	assert.Equal(t, order.Preparing, byStatus.Status())

	forAdmin, err := queries.NewListOrdersForAdminQuery(admin)
	require.NoError(t, err)
	assert.Equal(t, queries.ForAdmin, forAdmin.Filter())

	all, err := queries.NewListAllOrdersQuery(admin)
	require.NoError(t, err)
	assert.Equal(t, queries.All, all.Filter())

	_, err = queries.NewListOrdersByStatusQuery(admin, order.Unknown)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestNotConstructedQueries(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetItemQuery{}.Validate(), queries.ErrGetItemQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListMenuItemsQuery{}.Validate(), queries.ErrListMenuItemsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetLowStockItemsQuery{}.Validate(), queries.ErrGetLowStockItemsQueryIsNotConstructed)
}

func TestNewGetLowStockItemsQuery_Threshold(t *testing.T) {
	_, err := queries.NewGetLowStockItemsQuery(0)
	assert.True(t, errs.IsInvalidArgument(err))

	query, err := queries.NewGetLowStockItemsQuery(5)
	require.NoError(t, err)
	assert.Equal(t, 5, query.Threshold())
}

func TestNewListMenuItemsQuery_CopiesVegFilter(t *testing.T) {
	veg := true
	query, err := queries.NewListMenuItemsQuery(kernel.NewUUID(), queries.ItemFilter{Veg: &veg})
	require.NoError(t, err)

	veg = false

	assert.True(t, *query.Filter().Veg)
}

func TestCatalogQuery_Constructors(t *testing.T) {
	_, err := queries.NewGetMenuQuery(kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	ownerID := kernel.NewUUID()
	query, err := queries.NewListMenusQuery(queries.MenuFilter{ActiveOnly: true, OwnerID: &ownerID})
	require.NoError(t, err)
	ownerID = kernel.NewUUID()
	assert.NotEqual(t, ownerID, *query.Filter().OwnerID, "the filter keeps its own copy of the owner")

	zero := kernel.UUID{}
	_, err = queries.NewListMenusQuery(queries.MenuFilter{OwnerID: &zero})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewListAddressesByUserQuery(nil, kernel.NewUUID())
	assert.True(t, errs.IsInvalidArgument(err))

	assert.ErrorIs(t, queries.GetMenuQuery{}.Validate(), queries.ErrGetMenuQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListMenusQuery{}.Validate(), queries.ErrListMenusQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListAddressesByUserQuery{}.Validate(),
		queries.ErrListAddressesByUserQueryIsNotConstructed)
}
