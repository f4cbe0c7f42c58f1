package itemrepo_test

import (
	"context"
	"testing"

	"mealorders/internal/adapters/out/postgres/itemrepo"
	"mealorders/internal/adapters/out/postgres/pgtest"
	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *itemrepo.GormItemRepository
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = itemrepo.NewGormItemRepository(suite.database.DB)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ItemRepositoryIntegrationTestSuite) addItem(name string, stock int) *catalog.Item {
	item, err := catalog.NewItem(kernel.NewUUID(), kernel.NewUUID(), name, "house special", kernel.MustMoney("85.25"),
		stock, false, true, kernel.Actor("admin-1"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), item))
	return item
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsEveryField() {
	item := suite.addItem("Masala Dosa", 7)

	stored, err := suite.repository.Get(context.Background(), item.ID())

	suite.Require().NoError(err)
	suite.Equal(item.MenuID(), stored.MenuID())
	suite.Equal("Masala Dosa", stored.Name())
	suite.Equal("house special", stored.Details())
	suite.Equal("85.25", stored.Price().String())
	suite.Equal(7, stored.Stock())
	suite.False(stored.IsVeg())
	suite.True(stored.IsAvailable())
	suite.Equal(kernel.Actor("admin-1"), stored.CreatedBy())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_PersistsStockAndActor() {
	ctx := context.Background()
	item := suite.addItem("Idli", 4)
	suite.Require().NoError(item.UpdateStock(1, kernel.SystemActor))
	suite.Require().NoError(item.SetAvailability(false, kernel.SystemActor))

	suite.Require().NoError(suite.repository.Update(ctx, item))

	stored, err := suite.repository.GetForUpdate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(1, stored.Stock())
	suite.False(stored.IsAvailable())
	suite.Equal(kernel.SystemActor, stored.UpdatedBy())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.True(errs.IsNotFound(err))

	_, err = suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())
	suite.True(errs.IsNotFound(err))
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetManyForUpdate_ReturnsEveryRequestedItem() {
	a := suite.addItem("Vada", 3)
	b := suite.addItem("Upma", 5)

	items, err := suite.repository.GetManyForUpdate(context.Background(), []kernel.UUID{b.ID(), a.ID(), b.ID()})

	suite.Require().NoError(err)
	suite.Len(items, 2)
	suite.Equal(3, items[a.ID().String()].Stock())
	suite.Equal(5, items[b.ID().String()].Stock())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetManyForUpdate_MissingItem_ReturnsNotFound() {
	a := suite.addItem("Vada", 3)
	missing := kernel.NewUUID()

	_, err := suite.repository.GetManyForUpdate(context.Background(), []kernel.UUID{a.ID(), missing})

	suite.Require().True(errs.IsNotFound(err))
	suite.Contains(err.Error(), missing.String())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetManyForUpdate_Empty() {
	items, err := suite.repository.GetManyForUpdate(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(items)
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
