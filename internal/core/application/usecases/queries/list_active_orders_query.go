package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrListActiveOrdersQueryIsNotConstructed = errors.New(
		"ListActiveOrdersQuery must be created via NewListActiveOrdersQuery constructor",
	)
)

// ListActiveOrdersQuery retrieves all orders still moving through the
// pipeline. Terminal orders and failed orders awaiting an operator decision
// are excluded.
//
// Example:
//
//	query := NewListActiveOrdersQuery()
//	handler := NewListActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list active orders: %w", err)
//	}
//
//	fmt.Printf("%d orders in flight\n", len(orders))
type ListActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListActiveOrdersQuery creates a query for the active order list.
// This is a parameterless query used by the admin dashboard.
func NewListActiveOrdersQuery() ListActiveOrdersQuery {
	return ListActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListActiveOrdersQueryIsNotConstructed if validation fails.
func (q ListActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListActiveOrdersQueryIsNotConstructed)
}

// ListActiveOrdersQueryResponse is one row of the active order list.
// Money values are in paise; Profit is derived from the pricing columns.
type ListActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	CommerceOrderID kernel.UUID
	Status          string
	StoreName       string
	CustomerName    string
	PrimarySKU      string
	OrderValue      int64
	Profit          int64
	TrackingNumber  string
	IsPriority      bool
	IsDelayed       bool
	HasIssue        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
