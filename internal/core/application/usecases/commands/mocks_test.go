package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveNotUpdatedSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCommerceProjector struct{ mock.Mock }

func (m *MockCommerceProjector) ProjectStatus(ctx context.Context, commerceOrderID kernel.UUID, coarseStatus string) error {
	args := m.Called(ctx, commerceOrderID, coarseStatus)
	return args.Error(0)
}

func (m *MockCommerceProjector) ProjectTracking(ctx context.Context, commerceOrderID kernel.UUID, update ports.TrackingProjection) error {
	args := m.Called(ctx, commerceOrderID, update)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockAuditSink struct{ mock.Mock }

func (m *MockAuditSink) Record(ctx context.Context, record ports.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// collaborators bundles the side-effect mocks behind one SideEffects
// instance so each test can set expectations and then drain with Wait.
type collaborators struct {
	projector *MockCommerceProjector
	notifier  *MockNotifier
	audit     *MockAuditSink
	effects   *commands.SideEffects
}

func newCollaborators() *collaborators {
	projector := new(MockCommerceProjector)
	notifier := new(MockNotifier)
	audit := new(MockAuditSink)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &collaborators{
		projector: projector,
		notifier:  notifier,
		audit:     audit,
		effects:   commands.NewSideEffects(projector, notifier, audit, logger),
	}
}

func makePendingOrder(t *testing.T) *order.Order {
	t.Helper()

	orderValue, err := kernel.NewMoney(10000)
	require.NoError(t, err)
	productCost, err := kernel.NewMoney(4000)
	require.NoError(t, err)
	shippingCost, err := kernel.NewMoney(500)
	require.NoError(t, err)
	serviceFee, err := kernel.NewMoney(300)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Details{
			StoreName:    "Trendy Things",
			CustomerName: "Asha Verma",
			PrimarySKU:   "SKU-001",
		},
		order.Pricing{
			OrderValue:     orderValue,
			ProductCost:    productCost,
			ShippingCost:   shippingCost,
			ServiceFee:     serviceFee,
			WalletDeducted: orderValue,
		},
		kernel.NewUUID(), time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}

func makeOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	aggregate := makePendingOrder(t)
	if status != order.Pending {
		require.NoError(t, aggregate.ChangeStatus(status, kernel.NewUUID(), "", time.Now()))
	}
	return aggregate
}
