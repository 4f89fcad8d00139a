package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes aggregate fulfillment metrics with SQL.
// All aggregation happens in the database; the handler only assembles the
// response.
//
// Example:
//
//	handler := NewGetOrderStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetOrderStatsQuery())
//	if err != nil {
//	    return err
//	}
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for dashboard metric queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the aggregation queries and returns the metrics.
// An empty order table yields zero values, not an error.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{
		CountsByStatus: make(map[string]int64),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status NOT IN (?, ?, ?, ?)),
			COALESCE(SUM(order_value), 0),
			COALESCE(SUM(order_value - product_cost - shipping_cost - service_fee)
				FILTER (WHERE status = ?), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (delivered_at - wallet_deducted_at)) / 3600)
				FILTER (WHERE status = ? AND delivered_at IS NOT NULL), 0),
			COUNT(*) FILTER (WHERE is_priority),
			COUNT(*) FILTER (WHERE has_issue)
		FROM orders
	`, order.Delivered.String(), order.Returned.String(),
		order.Cancelled.String(), order.Failed.String(),
		order.Delivered.String(), order.Delivered.String()).Row()

	err := row.Scan(
		&resp.TotalOrders,
		&resp.ActiveOrders,
		&resp.TotalOrderValue,
		&resp.DeliveredProfit,
		&resp.AverageFulfillmentHours,
		&resp.PriorityOrders,
		&resp.OrdersWithIssues,
	)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}
		resp.CountsByStatus[status] = count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
