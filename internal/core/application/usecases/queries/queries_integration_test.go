package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "mealorders/internal/adapters/out/postgres"
	"mealorders/internal/adapters/out/postgres/pgtest"
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/core/ports"
	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory

	customer   *identity.User
	other      *identity.User
	admin      *identity.User
	superAdmin *identity.User
	addr       *address.Address
	menu       *catalog.Menu
	thali      *catalog.Item
	lassi      *catalog.Item
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.customer = suite.addUser(uow, "Asha", identity.RoleUser)
	suite.other = suite.addUser(uow, "Ravi", identity.RoleUser)
	suite.admin = suite.addUser(uow, "Meera", identity.RoleAdmin)
	suite.superAdmin = suite.addUser(uow, "Root", identity.RoleSuperAdmin)

	var err error
	suite.addr, err = address.NewAddress(kernel.NewUUID(), suite.customer.ID(), address.Fields{
		AddressLine1: "12 MG Road", AddressLine2: "2nd floor", Landmark: "Temple",
		FlatOrBlock: "B-204", City: "Pune", Pincode: "411001",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AddressRepository().Add(ctx, suite.addr))

	suite.menu, err = catalog.NewMenu(kernel.NewUUID(), suite.admin.ID(), "Meera's Kitchen", "", 4, nil,
		suite.admin.Actor())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MenuRepository().Add(ctx, suite.menu))

	suite.thali = suite.addItem(uow, "Thali", "150", 10, true, true)
	suite.lassi = suite.addItem(uow, "Lassi", "40", 2, true, true)
}

func (suite *QueriesIntegrationTestSuite) addUser(uow ports.UnitOfWork, name string, role identity.Role) *identity.User {
	id := kernel.NewUUID()
	u, err := identity.NewUser(id, name, id.String()+"@example.com", role)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(context.Background(), u))
	return u
}

func (suite *QueriesIntegrationTestSuite) addItem(
	uow ports.UnitOfWork, name, price string, stock int, veg, available bool,
) *catalog.Item {
	item, err := catalog.NewItem(kernel.NewUUID(), suite.menu.ID(), name, "", kernel.MustMoney(price), stock,
		veg, available, suite.admin.Actor())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(context.Background(), item))
	return item
}

func (suite *QueriesIntegrationTestSuite) addOrder(
	owner *identity.User, addressID, menuID *kernel.UUID, status order.Status, createdAt time.Time,
) *order.Order {
	line, err := order.NewOrderItem(kernel.NewUUID(), suite.thali.ID(), 2, suite.thali.Price())
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(order.State{
		ID: kernel.NewUUID(), UserID: owner.ID(), AddressID: addressID, MenuID: menuID,
		PaymentMode: order.Cash, PaymentStatus: order.PaymentPending, Status: status,
		Items: []*order.OrderItem{line}, CreatedAt: createdAt.UTC(), UpdatedAt: createdAt.UTC(),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) getOrder(actor *identity.User, id kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(actor, id)
	suite.Require().NoError(err)
	return queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)
}

func (suite *QueriesIntegrationTestSuite) list(query queries.ListOrdersQuery, err error) ([]queries.OrderView, error) {
	suite.Require().NoError(err)
	return queries.NewListOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsPersistedReadShape() {
	addressID, menuID := suite.addr.ID(), suite.menu.ID()
	o := suite.addOrder(suite.customer, &addressID, &menuID, order.Confirmed, time.Now())

	// the live price changes after the order captured it
	suite.Require().NoError(suite.database.DB.Exec("UPDATE items SET price = 999 WHERE id = ?",
		suite.thali.ID().Bytes()).Error)

	view, err := suite.getOrder(suite.customer, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), view.OrderID)
	suite.Equal(order.Cash, view.PaymentMode)
	suite.Equal(order.PaymentPending, view.PaymentStatus)
	suite.Equal(order.Confirmed, view.OrderStatus)
	suite.Equal(suite.customer.ID(), view.UserID)
	suite.Equal("Asha", view.UserName)
	suite.Equal(suite.customer.Email(), view.UserEmail)
	suite.Equal("12 MG Road", view.AddressLine1)
	suite.Equal("2nd floor", view.AddressLine2)
	suite.Equal("Pune", view.City)
	suite.Equal("411001", view.Pincode)
	suite.Equal("300.00", view.TotalAmount.String())
	suite.Require().Len(view.Items, 1)
	line := view.Items[0]
	suite.Equal(suite.thali.ID(), line.ItemID)
	suite.Equal("Thali", line.ItemName)
	suite.Equal(2, line.Quantity)
	suite.Equal("150.00", line.Price.String())
	suite.Equal("300.00", line.Total.String())
	suite.True(line.Veg)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_CartWithoutAddress() {
	o := suite.addOrder(suite.customer, nil, nil, order.Pending, time.Now())

	view, err := suite.getOrder(suite.customer, o.ID())

	suite.Require().NoError(err)
	suite.Nil(view.AddressID)
	suite.Empty(view.AddressLine1)
	suite.Empty(view.City)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_AccessRules() {
	o := suite.addOrder(suite.customer, nil, nil, order.Pending, time.Now())

	_, err := suite.getOrder(suite.other, o.ID())
	suite.True(errs.IsForbidden(err))

	_, err = suite.getOrder(suite.admin, o.ID())
	suite.Require().NoError(err)

	_, err = suite.getOrder(suite.other, kernel.NewUUID())
	suite.True(errs.IsNotFound(err), "a missing order is reported before a missing permission")
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ByUser_NewestFirst() {
	older := suite.addOrder(suite.customer, nil, nil, order.Pending, time.Now().Add(-time.Hour))
	newer := suite.addOrder(suite.customer, nil, nil, order.Delivered, time.Now())
	suite.addOrder(suite.other, nil, nil, order.Pending, time.Now())

	views, err := suite.list(queries.NewListOrdersByUserQuery(suite.customer, suite.customer.ID()))

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(newer.ID(), views[0].OrderID)
	suite.Equal(older.ID(), views[1].OrderID)
	suite.Len(views[0].Items, 1)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ByUser_AccessRules() {
	_, err := suite.list(queries.NewListOrdersByUserQuery(suite.other, suite.customer.ID()))
	suite.True(errs.IsForbidden(err))

	_, err = suite.list(queries.NewListOrdersByUserQuery(suite.admin, kernel.NewUUID()))
	suite.True(errs.IsNotFound(err))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ByStatus() {
	preparing := suite.addOrder(suite.customer, nil, nil, order.Preparing, time.Now())
	suite.addOrder(suite.other, nil, nil, order.Pending, time.Now())

	views, err := suite.list(queries.NewListOrdersByStatusQuery(suite.admin, order.Preparing))
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(preparing.ID(), views[0].OrderID)

	_, err = suite.list(queries.NewListOrdersByStatusQuery(suite.customer, order.Preparing))
	suite.True(errs.IsForbidden(err))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ForAdmin_OnlyOwnMenus() {
	menuID := suite.menu.ID()
	foreignMenu := kernel.NewUUID()
	mine := suite.addOrder(suite.customer, nil, &menuID, order.Pending, time.Now())
	suite.addOrder(suite.customer, nil, &foreignMenu, order.Pending, time.Now())
	suite.addOrder(suite.customer, nil, nil, order.Pending, time.Now())

	views, err := suite.list(queries.NewListOrdersForAdminQuery(suite.admin))
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(mine.ID(), views[0].OrderID)

	views, err = suite.list(queries.NewListOrdersForAdminQuery(suite.superAdmin))
	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_All() {
	suite.addOrder(suite.customer, nil, nil, order.Pending, time.Now())
	suite.addOrder(suite.other, nil, nil, order.Cancelled, time.Now())

	views, err := suite.list(queries.NewListAllOrdersQuery(suite.superAdmin))
	suite.Require().NoError(err)
	suite.Len(views, 2)

	_, err = suite.list(queries.NewListAllOrdersQuery(suite.customer))
	suite.True(errs.IsForbidden(err))
}

func (suite *QueriesIntegrationTestSuite) TestGetItem() {
	query, err := queries.NewGetItemQuery(suite.lassi.ID())
	suite.Require().NoError(err)
	handler := queries.NewGetItemQueryHandler(suite.database.DB)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Lassi", view.Name)
	suite.Equal("40.00", view.Price.String())
	suite.Equal(2, view.Stock)
	suite.Equal(suite.admin.Actor(), view.CreatedBy)

	missing, err := queries.NewGetItemQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.True(errs.IsNotFound(err))
}

func (suite *QueriesIntegrationTestSuite) TestListMenuItems_Filters() {
	uow := suite.factory.Create()
	chicken := suite.addItem(uow, "Chicken Curry", "220", 5, false, true)
	suite.addItem(uow, "Biryani", "250", 5, false, false)
	handler := queries.NewListMenuItemsQueryHandler(suite.database.DB)

	run := func(filter queries.ItemFilter) []string {
		query, err := queries.NewListMenuItemsQuery(suite.menu.ID(), filter)
		suite.Require().NoError(err)
		items, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		return names
	}

	veg, nonVeg := true, false
	suite.Equal([]string{"Biryani", "Chicken Curry", "Lassi", "Thali"}, run(queries.ItemFilter{}))
	suite.Equal([]string{"Chicken Curry", "Lassi", "Thali"}, run(queries.ItemFilter{AvailableOnly: true}))
	suite.Equal([]string{"Lassi", "Thali"}, run(queries.ItemFilter{Veg: &veg}))
	suite.Equal([]string{chicken.Name()}, run(queries.ItemFilter{AvailableOnly: true, Veg: &nonVeg}))
}

func (suite *QueriesIntegrationTestSuite) TestGetLowStockItems_AvailableOnlyLowestFirst() {
	uow := suite.factory.Create()
	suite.addItem(uow, "Kheer", "60", 0, true, true)
	suite.addItem(uow, "Halwa", "60", 1, true, false)
	query, err := queries.NewGetLowStockItemsQuery(5)
	suite.Require().NoError(err)

	items, err := queries.NewGetLowStockItemsQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Kheer", items[0].Name)
	suite.Equal("Lassi", items[1].Name)
}

func (suite *QueriesIntegrationTestSuite) addMenu(owner *identity.User, name string, active bool) *catalog.Menu {
	kitchen, err := catalog.NewKitchenAddress(kernel.NewUUID(), "4 FC Road", "", "Pune", "411004")
	suite.Require().NoError(err)
	menu, err := catalog.NewMenu(kernel.NewUUID(), owner.ID(), name, "home style", 3.5,
		[]*catalog.KitchenAddress{kitchen}, owner.Actor())
	suite.Require().NoError(err)
	if !active {
		suite.Require().NoError(menu.SetActive(false, owner.Actor()))
	}
	suite.Require().NoError(suite.factory.Create().MenuRepository().Add(context.Background(), menu))
	return menu
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_WithKitchens() {
	menu := suite.addMenu(suite.superAdmin, "Root's Canteen", false)
	handler := queries.NewGetMenuQueryHandler(suite.database.DB)
	query, err := queries.NewGetMenuQuery(menu.ID())
	suite.Require().NoError(err)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(menu.ID(), view.ID)
	suite.Equal(suite.superAdmin.ID(), view.OwnerID)
	suite.Equal("Root's Canteen", view.Name)
	suite.Equal("home style", view.Details)
	suite.InDelta(3.5, view.Rating, 0.0001)
	suite.False(view.IsActive)
	suite.Require().Len(view.Kitchens, 1)
	suite.Equal("4 FC Road", view.Kitchens[0].AddressLine1)
	suite.Equal("411004", view.Kitchens[0].Pincode)

	missing, err := queries.NewGetMenuQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.True(errs.IsNotFound(err))
}

func (suite *QueriesIntegrationTestSuite) TestListMenus_Filters() {
	suite.addMenu(suite.superAdmin, "Root's Canteen", true)
	suite.addMenu(suite.admin, "Closed Kitchen", false)
	handler := queries.NewListMenusQueryHandler(suite.database.DB)

	run := func(filter queries.MenuFilter) []string {
		query, err := queries.NewListMenusQuery(filter)
		suite.Require().NoError(err)
		menus, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		names := make([]string, 0, len(menus))
		for _, m := range menus {
			names = append(names, m.Name)
		}
		return names
	}

	adminID, unknown := suite.admin.ID(), kernel.NewUUID()
	suite.Equal([]string{"Closed Kitchen", "Meera's Kitchen", "Root's Canteen"}, run(queries.MenuFilter{}))
	suite.Equal([]string{"Meera's Kitchen", "Root's Canteen"}, run(queries.MenuFilter{ActiveOnly: true}))
	suite.Equal([]string{"Closed Kitchen", "Meera's Kitchen"}, run(queries.MenuFilter{OwnerID: &adminID}))
	suite.Equal([]string{"Meera's Kitchen"}, run(queries.MenuFilter{ActiveOnly: true, OwnerID: &adminID}))
	suite.Empty(run(queries.MenuFilter{OwnerID: &unknown}))
}

func (suite *QueriesIntegrationTestSuite) TestListAddressesByUser() {
	second, err := address.NewAddress(kernel.NewUUID(), suite.customer.ID(), address.Fields{
		AddressLine1: "1 Park Street", Landmark: "Museum", FlatOrBlock: "A-1", City: "Kolkata", Pincode: "700016",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().AddressRepository().Add(context.Background(), second))
	handler := queries.NewListAddressesByUserQueryHandler(suite.database.DB)

	list := func(actor *identity.User, userID kernel.UUID) ([]queries.AddressView, error) {
		query, qErr := queries.NewListAddressesByUserQuery(actor, userID)
		suite.Require().NoError(qErr)
		return handler.Handle(context.Background(), query)
	}

	views, err := list(suite.customer, suite.customer.ID())
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(second.ID(), views[0].ID)
	suite.Equal(suite.addr.ID(), views[1].ID)
	suite.Equal("B-204", views[1].FlatOrBlock)
	suite.Equal("Temple", views[1].Landmark)
	suite.Equal(suite.customer.ID(), views[1].UserID)

	views, err = list(suite.admin, suite.customer.ID())
	suite.Require().NoError(err)
	suite.Len(views, 2)

	views, err = list(suite.other, suite.other.ID())
	suite.Require().NoError(err)
	suite.Empty(views)

	_, err = list(suite.other, suite.customer.ID())
	suite.True(errs.IsForbidden(err))

	_, err = list(suite.admin, kernel.NewUUID())
	suite.True(errs.IsNotFound(err))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
