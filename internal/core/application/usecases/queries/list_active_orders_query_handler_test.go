package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.handler = queries.NewListActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewListActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) TestHandle_FiltersTerminalAndFailedOrders() {
	ctx := context.Background()
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	active := makeTestOrder(suite.T(), now)
	suite.Require().NoError(active.ChangeStatus(order.Packing, actor, "", now))
	suite.Require().NoError(suite.orderRepo.Add(ctx, active))

	rto := makeTestOrder(suite.T(), now)
	suite.Require().NoError(rto.ChangeStatus(order.RTOInitiated, actor, "", now))
	suite.Require().NoError(suite.orderRepo.Add(ctx, rto))

	for _, terminal := range []order.Status{order.Delivered, order.Cancelled, order.Failed} {
		finished := makeTestOrder(suite.T(), now)
		suite.Require().NoError(finished.ChangeStatus(terminal, actor, "", now))
		suite.Require().NoError(suite.orderRepo.Add(ctx, finished))
	}

	returned := makeTestOrder(suite.T(), now)
	suite.Require().NoError(returned.ChangeStatus(order.RTOInitiated, actor, "", now))
	suite.Require().NoError(returned.ChangeStatus(order.Returned, actor, "", now))
	suite.Require().NoError(suite.orderRepo.Add(ctx, returned))

	result, err := suite.handler.Handle(ctx, queries.NewListActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	statuses := []string{result[0].Status, result[1].Status}
	suite.Contains(statuses, "packing")
	suite.Contains(statuses, "rto_initiated")
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) TestHandle_NewestOrdersFirst() {
	ctx := context.Background()
	now := time.Now().UTC()

	older := makeTestOrder(suite.T(), now)
	suite.Require().NoError(suite.orderRepo.Add(ctx, older))
	newer := makeTestOrder(suite.T(), now)
	suite.Require().NoError(suite.orderRepo.Add(ctx, newer))

	err := suite.db.Exec(
		"UPDATE orders SET created_at = ? WHERE id = ?",
		now.Add(-24*time.Hour), older.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, queries.NewListActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
}

func (suite *ListActiveOrdersQueryHandlerTestSuite) TestHandle_DerivesProfitAndFlags() {
	ctx := context.Background()
	now := time.Now().UTC()

	aggregate := makeTestOrder(suite.T(), now)
	priority := true
	aggregate.SetFlags(order.FlagsUpdate{IsPriority: &priority})
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	result, err := suite.handler.Handle(ctx, queries.NewListActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(10000), result[0].OrderValue)
	suite.Equal(int64(5200), result[0].Profit)
	suite.True(result[0].IsPriority)
	suite.False(result[0].IsDelayed)
	suite.False(result[0].HasIssue)
	suite.Equal("Trendy Things", result[0].StoreName)
}

func TestListActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListActiveOrdersQueryHandlerTestSuite))
}
