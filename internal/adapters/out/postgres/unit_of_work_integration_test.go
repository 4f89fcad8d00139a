package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) makeOrder() *order.Order {
	orderValue, err := kernel.NewMoney(10000)
	suite.Require().NoError(err)
	productCost, err := kernel.NewMoney(4000)
	suite.Require().NoError(err)
	shippingCost, err := kernel.NewMoney(500)
	suite.Require().NoError(err)
	serviceFee, err := kernel.NewMoney(300)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Details{
			StoreName:       "Trendy Things",
			CustomerName:    "Asha Verma",
			CustomerEmail:   "asha@example.com",
			CustomerPhone:   "+91 98765 43210",
			ShippingAddress: "12 MG Road, Bengaluru, KA 560001",
			PrimarySKU:      "SKU-001",
			Items:           []order.Item{{SKU: "SKU-001", Quantity: 1}},
		},
		order.Pricing{
			OrderValue:     orderValue,
			ProductCost:    productCost,
			ShippingCost:   shippingCost,
			ServiceFee:     serviceFee,
			WalletDeducted: orderValue,
		},
		kernel.NewUUID(), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormUnitOfWorkTestSuite) TestCommitPersistsChanges() {
	ctx := context.Background()
	aggregate := suite.makeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))
}

func (suite *GormUnitOfWorkTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	aggregate := suite.makeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestRollbackAfterCommitLeavesDataIntact() {
	ctx := context.Background()
	aggregate := suite.makeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	verify := suite.factory.Create()
	restored, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, restored.Status())
}

func (suite *GormUnitOfWorkTestSuite) TestRepositoryWithoutBeginUsesBaseConnection() {
	ctx := context.Background()
	aggregate := suite.makeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	verify := suite.factory.Create()
	restored, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
