package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the order status update,
// the inventory deduction, and the delivery upsert share one database
// transaction: a rollback leaves no trace, a commit persists all three.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, products, product_variations, deliveries, vehicles, drivers, notifications").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrder persists a Ready pickup-agnostic order with one line item and
// returns its storage-assigned ID.
func (suite *UnitOfWorkIntegrationTestSuite) seedOrder(productID int64, quantity int) int64 {
	ctx := context.Background()

	item, err := order.NewLineItem(productID, nil, quantity, 25.0)
	suite.Require().NoError(err)

	o, err := order.NewOrder(300, "+255700000001", 50.0, order.StandardDelivery, []order.LineItem{item}, time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	return o.ID()
}

func (suite *UnitOfWorkIntegrationTestSuite) seedProduct(stockLevel int) int64 {
	dto := productrepo.ProductDTO{Name: "Rice 5kg", Price: 25.0, StockLevel: stockLevel, MinimumStock: 3, StockStatus: "In Stock"}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.DeliveryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// A second Begin on an open transaction is a no-op.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackLeavesNoTrace() {
	ctx := context.Background()

	productID := suite.seedProduct(10)
	orderID := suite.seedOrder(productID, 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().GetByIDForUpdate(ctx, orderID)
	suite.Require().NoError(err)
	_, err = o.TransitionTo(order.Processing, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	products, err := uow.ProductRepository().GetByIDs(ctx, []int64{productID})
	suite.Require().NoError(err)
	p := products[productID]
	suite.Require().NoError(p.Deduct(2))
	suite.Require().NoError(uow.ProductRepository().UpdateStock(ctx, p))

	d, err := delivery.NewDelivery(orderID, delivery.Pending, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))

	suite.Require().NoError(uow.Rollback(ctx))

	// None of the three writes may be visible outside the transaction.
	fresh := suite.factory.Create()
	loaded, err := fresh.OrderRepository().GetByID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.WaitingPayment, loaded.Status())

	var stockLevel int
	suite.Require().NoError(suite.db.Raw(
		"SELECT stock_level FROM products WHERE id = ?", productID).Scan(&stockLevel).Error)
	suite.Equal(10, stockLevel)

	var deliveries int64
	suite.Require().NoError(suite.db.Table("deliveries").Count(&deliveries).Error)
	suite.Zero(deliveries)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsAllWrites() {
	ctx := context.Background()

	productID := suite.seedProduct(10)
	orderID := suite.seedOrder(productID, 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().GetByIDForUpdate(ctx, orderID)
	suite.Require().NoError(err)
	_, err = o.TransitionTo(order.Processing, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	products, err := uow.ProductRepository().GetByIDs(ctx, []int64{productID})
	suite.Require().NoError(err)
	p := products[productID]
	suite.Require().NoError(p.Deduct(2))
	suite.Require().NoError(uow.ProductRepository().UpdateStock(ctx, p))

	d, err := delivery.NewDelivery(orderID, delivery.Pending, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	loaded, err := fresh.OrderRepository().GetByID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Processing, loaded.Status())

	var stockLevel int
	suite.Require().NoError(suite.db.Raw(
		"SELECT stock_level FROM products WHERE id = ?", productID).Scan(&stockLevel).Error)
	suite.Equal(8, stockLevel)

	persisted, err := fresh.DeliveryRepository().GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, persisted.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTrackedAggregatesFollowRepositoryWrites() {
	ctx := context.Background()

	productID := suite.seedProduct(10)
	orderID := suite.seedOrder(productID, 2)

	uow := suite.factory.Create()
	gormUow, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Empty(gormUow.GetTrackedAggregates())

	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().GetByIDForUpdate(ctx, orderID)
	suite.Require().NoError(err)
	_, err = o.TransitionTo(order.Processing, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	d, err := delivery.NewDelivery(orderID, delivery.Pending, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))

	suite.Require().NoError(uow.Commit(ctx))

	tracked := gormUow.GetTrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Equal(o.ID(), tracked[0].ID)
	suite.Same(o, tracked[0].Aggregate)
	suite.Equal(d.ID(), tracked[1].ID)
	suite.Same(d, tracked[1].Aggregate)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
