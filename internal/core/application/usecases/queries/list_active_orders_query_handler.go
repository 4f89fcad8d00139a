package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out terminal and failed orders to show the current workload.
//
// Example:
//
//	handler := NewListActiveOrdersQueryHandler(db)
//	query := NewListActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list active orders: %v", err)
//	    return err
//	}
type ListActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListActiveOrdersQueryHandler creates a handler for active order list queries.
// Requires a GORM database connection for query execution.
func NewListActiveOrdersQueryHandler(db *gorm.DB) ListActiveOrdersQueryHandler {
	return ListActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Newest orders come first.
func (h ListActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListActiveOrdersQuery,
) ([]ListActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			commerce_order_id,
			status,
			store_name,
			customer_name,
			primary_sku,
			order_value,
			order_value - product_cost - shipping_cost - service_fee AS profit,
			tracking_number,
			is_priority,
			is_delayed,
			has_issue,
			created_at,
			updated_at
		FROM orders
		WHERE status NOT IN (?, ?, ?, ?)
		ORDER BY created_at DESC
	`, order.Delivered.String(), order.Returned.String(),
		order.Cancelled.String(), order.Failed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp ListActiveOrdersQueryResponse
		var id, commerceID uuid.UUID

		err = rows.Scan(
			&id,
			&commerceID,
			&orderResp.Status,
			&orderResp.StoreName,
			&orderResp.CustomerName,
			&orderResp.PrimarySKU,
			&orderResp.OrderValue,
			&orderResp.Profit,
			&orderResp.TrackingNumber,
			&orderResp.IsPriority,
			&orderResp.IsDelayed,
			&orderResp.HasIssue,
			&orderResp.CreatedAt,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		commerceOrderID, idErr := kernel.UUIDFromBytes(commerceID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CommerceOrderID = commerceOrderID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
