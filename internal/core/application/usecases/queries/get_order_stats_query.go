package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves aggregate fulfillment metrics across all
// orders: counts, revenue, realized profit and delivery speed.
//
// Example:
//
//	query := NewGetOrderStatsQuery()
//	handler := NewGetOrderStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order stats: %w", err)
//	}
//
//	fmt.Printf("%d orders, %d active\n", stats.TotalOrders, stats.ActiveOrders)
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the fulfillment dashboard metrics.
// This is a parameterless query aggregating over the whole order table.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries the dashboard metrics.
//
// TotalOrderValue sums over every order; DeliveredProfit sums
// order_value - product_cost - shipping_cost - service_fee over delivered
// orders only, so unrealized margin on in-flight orders is not counted.
// AverageFulfillmentHours measures wallet deduction to delivery confirmation.
type GetOrderStatsQueryResponse struct {
	TotalOrders             int64
	CountsByStatus          map[string]int64
	ActiveOrders            int64
	TotalOrderValue         int64
	DeliveredProfit         int64
	AverageFulfillmentHours float64
	PriorityOrders          int64
	OrdersWithIssues        int64
}
