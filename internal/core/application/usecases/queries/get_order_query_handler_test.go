package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullView() {
	ctx := context.Background()
	actor := kernel.NewUUID()
	aggregate := makeTestOrder(suite.T(), time.Now().UTC())

	picker := kernel.NewUUID()
	suite.Require().NoError(aggregate.SetAssignment(order.RolePicker, &picker))
	suite.Require().NoError(aggregate.ChangeStatus(order.Sourced, actor, "supplier confirmed", time.Now().UTC()))

	number := "AWB-42"
	aggregate.ApplyTrackingUpdate(order.TrackingUpdate{Number: &number})
	suite.Require().NoError(aggregate.AddNote(actor, "fragile, double wrap", time.Now().UTC()))
	suite.Require().NoError(aggregate.AddAttachment("https://cdn.example.com/invoice.pdf"))

	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(aggregate.ID()))
	suite.True(view.CommerceOrderID.IsEqual(aggregate.CommerceOrderID()))
	suite.Equal("sourced", view.Status)
	suite.Equal("Trendy Things", view.StoreName)
	suite.Equal("Asha Verma", view.CustomerName)
	suite.Equal(int64(10000), view.OrderValue)
	suite.Equal(int64(5200), view.Profit)
	suite.Require().NotNil(view.PickerID)
	suite.True(view.PickerID.IsEqual(picker))
	suite.Nil(view.PackerID)
	suite.Equal("AWB-42", view.TrackingNumber)

	suite.Require().Len(view.Items, 1)
	suite.Equal("SKU-001", view.Items[0].SKU)
	suite.Equal(2, view.Items[0].Quantity)

	suite.Require().Len(view.History, 2)
	suite.Equal("pending", view.History[0].Status)
	suite.Equal("sourced", view.History[1].Status)
	suite.Equal("supplier confirmed", view.History[1].Note)
	suite.True(view.History[1].ActorID.IsEqual(actor))

	suite.Require().Len(view.Notes, 1)
	suite.Equal("fragile, double wrap", view.Notes[0].Text)
	suite.Equal([]string{"https://cdn.example.com/invoice.pdf"}, view.Attachments)

	suite.Equal(int64(0), view.Version)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
