package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single fulfillment order with its full status
// history, notes and attachments.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", view.ID, view.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.orderID = id
	return nil
}

// OrderHistoryView is one entry of an order's status trail.
type OrderHistoryView struct {
	Status    string
	ActorID   kernel.UUID
	Timestamp time.Time
	Note      string
}

// OrderNoteView is one internal staff note on an order.
type OrderNoteView struct {
	AuthorID  kernel.UUID
	Timestamp time.Time
	Text      string
}

// OrderItemView is one line item of an order.
type OrderItemView struct {
	SKU      string
	Variant  string
	Quantity int
}

// GetOrderQueryResponse is the read model for a single order.
// Profit is derived from the pricing columns; all money values are in paise.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CommerceOrderID kernel.UUID
	UserID          kernel.UUID
	StoreID         kernel.UUID

	Status string

	StoreName       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	PrimarySKU      string
	Items           []OrderItemView

	OrderValue     int64
	ProductCost    int64
	ShippingCost   int64
	ServiceFee     int64
	WalletDeducted int64
	Profit         int64

	PickerID        *kernel.UUID
	PackerID        *kernel.UUID
	QCID            *kernel.UUID
	CourierPersonID *kernel.UUID

	TrackingNumber    string
	TrackingURL       string
	CourierName       string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time

	IsPriority       bool
	IsDelayed        bool
	HasIssue         bool
	IssueDescription string

	History     []OrderHistoryView
	Notes       []OrderNoteView
	Attachments []string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
