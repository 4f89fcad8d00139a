package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func makeTestOrder(t *testing.T, createdAt time.Time) *order.Order {
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
			StoreName:       "Trendy Things",
			CustomerName:    "Asha Verma",
			CustomerEmail:   "asha@example.com",
			CustomerPhone:   "+91 98765 43210",
			ShippingAddress: "12 MG Road, Bengaluru, KA 560001",
			PrimarySKU:      "SKU-001",
			Items:           []order.Item{{SKU: "SKU-001", Variant: "Blue / M", Quantity: 2}},
		},
		order.Pricing{
			OrderValue:     orderValue,
			ProductCost:    productCost,
			ShippingCost:   shippingCost,
			ServiceFee:     serviceFee,
			WalletDeducted: orderValue,
		},
		kernel.NewUUID(), createdAt,
	)
	require.NoError(t, err)
	return aggregate
}
