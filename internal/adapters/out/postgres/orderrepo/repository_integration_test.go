package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"mealorders/internal/adapters/out/postgres/orderrepo"
	"mealorders/internal/adapters/out/postgres/pgtest"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	userID     kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
	suite.userID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(lines ...int) *order.Order {
	addressID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), suite.userID, &addressID, nil, order.Cash)
	suite.Require().NoError(err)
	for _, q := range lines {
		_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), q, kernel.MustMoney("49.50"))
		suite.Require().NoError(err)
	}
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) countLines() int64 {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error)
	return count
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithLines() {
	ctx := context.Background()
	o := suite.newOrder(2, 1)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), stored.ID())
	suite.Equal(suite.userID, stored.UserID())
	suite.Equal(*o.AddressID(), *stored.AddressID())
	suite.Nil(stored.MenuID())
	suite.Equal(order.Pending, stored.Status())
	suite.Equal(order.PaymentPending, stored.PaymentStatus())
	suite.Equal("148.50", stored.TotalAmount().String())

	suite.Require().Len(stored.Items(), 2)
	for i, line := range o.Items() {
		suite.Equal(line.ID(), stored.Items()[i].ID(), "lines keep their order")
		suite.Equal(line.Quantity(), stored.Items()[i].Quantity())
		suite.True(line.PriceAtPurchase().IsEqual(stored.Items()[i].PriceAtPurchase()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	stored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(stored)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLinesAndStatus() {
	ctx := context.Background()
	o := suite.newOrder(2, 3)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := o.RemoveItem(o.Items()[0].ID())
	suite.Require().NoError(err)
	_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 4, kernel.MustMoney("10"))
	suite.Require().NoError(err)
	_, err = o.ChangeStatus(order.Confirmed)
	suite.Require().NoError(err)
	paid := order.PaymentPaid
	suite.Require().NoError(o.UpdatePayment(nil, &paid))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, stored.Status())
	suite.Equal(order.PaymentPaid, stored.PaymentStatus())
	suite.Require().Len(stored.Items(), 2)
	suite.Equal(3, stored.Items()[0].Quantity())
	suite.Equal(4, stored.Items()[1].Quantity())
	suite.Equal("188.50", stored.TotalAmount().String())
	suite.Equal(int64(2), suite.countLines())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder(1))

	suite.True(errs.IsNotFound(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesLines() {
	ctx := context.Background()
	o := suite.newOrder(1, 1, 1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.True(errs.IsNotFound(err))
	suite.Equal(int64(0), suite.countLines())
	suite.True(errs.IsNotFound(suite.repository.Delete(ctx, o.ID())))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksConcurrentWriter() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()
	_, err := orderrepo.NewGormOrderRepository(tx).GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	lockCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	other := suite.database.DB.Begin()
	defer other.Rollback()
	_, err = orderrepo.NewGormOrderRepository(other).GetForUpdate(lockCtx, o.ID())

	suite.Require().Error(err, "second locker must wait for the first transaction")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindOldestPendingByUser() {
	ctx := context.Background()

	_, err := suite.repository.FindOldestPendingByUser(ctx, suite.userID)
	suite.True(errs.IsNotFound(err))

	oldest, err := order.RestoreOrder(order.State{
		ID: kernel.NewUUID(), UserID: suite.userID,
		PaymentMode: order.Cash, PaymentStatus: order.PaymentPending, Status: order.Pending,
		CreatedAt: time.Now().Add(-time.Hour).UTC(), UpdatedAt: time.Now().UTC(),
	})
	suite.Require().NoError(err)
	confirmed, err := order.RestoreOrder(order.State{
		ID: kernel.NewUUID(), UserID: suite.userID,
		PaymentMode: order.Cash, PaymentStatus: order.PaymentPending, Status: order.Confirmed,
		CreatedAt: time.Now().Add(-2 * time.Hour).UTC(), UpdatedAt: time.Now().UTC(),
	})
	suite.Require().NoError(err)
	for _, o := range []*order.Order{suite.newOrder(1), oldest, confirmed} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	found, err := suite.repository.FindOldestPendingByUser(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(oldest.ID(), found.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindOrderIDByLine() {
	ctx := context.Background()
	o := suite.newOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	orderID, err := suite.repository.FindOrderIDByLine(ctx, o.Items()[0].ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), orderID)

	_, err = suite.repository.FindOrderIDByLine(ctx, kernel.NewUUID())
	suite.True(errs.IsNotFound(err))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
