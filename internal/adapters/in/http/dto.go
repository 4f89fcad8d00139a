package http

import "time"

// ErrorResponse is the envelope for every non-2xx reply. CurrentStatus and
// ValidTransitions are populated only for rejected status transitions so the
// admin surface can render the allowed moves.
type ErrorResponse struct {
	Code             int      `json:"code"`
	Message          string   `json:"message"`
	CurrentStatus    string   `json:"currentStatus,omitempty"`
	ValidTransitions []string `json:"validTransitions,omitempty"`
}

// OrderItemRequest is one line item on an intake request.
type OrderItemRequest struct {
	SKU      string `json:"sku"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the intake payload. Money values are in paise.
type CreateOrderRequest struct {
	CommerceOrderID string `json:"commerceOrderId"`
	UserID          string `json:"userId"`
	StoreID         string `json:"storeId"`

	StoreName       string             `json:"storeName"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress"`
	PrimarySKU      string             `json:"primarySku"`
	Items           []OrderItemRequest `json:"items"`

	OrderValue     int64 `json:"orderValue"`
	ProductCost    int64 `json:"productCost"`
	ShippingCost   int64 `json:"shippingCost"`
	ServiceFee     int64 `json:"serviceFee"`
	WalletDeducted int64 `json:"walletDeducted"`

	ActorID string `json:"actorId"`
}

// CreateOrderResponse confirms intake with the new order identifier.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeStatusRequest moves an order to a new status.
type ChangeStatusRequest struct {
	Status  string `json:"status"`
	ActorID string `json:"actorId"`
	Note    string `json:"note,omitempty"`
}

// ChangeStatusResponse reports the order's status after the transition.
type ChangeStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// BulkActionRequest applies one action to many orders. Target is required
// for update_status; StaffID is required for the assignment actions.
type BulkActionRequest struct {
	OrderIDs []string `json:"orderIds"`
	Action   string   `json:"action"`
	Target   string   `json:"target,omitempty"`
	StaffID  *string  `json:"staffId,omitempty"`
	ActorID  string   `json:"actorId"`
}

// BulkActionFailure names one order the bulk action could not be applied to.
type BulkActionFailure struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// BulkActionResponse summarizes a bulk action run.
type BulkActionResponse struct {
	Succeeded []string            `json:"succeeded"`
	Failed    []BulkActionFailure `json:"failed"`
}

// AssignmentRequest assigns or clears one staff role. A null staffId clears
// the assignment.
type AssignmentRequest struct {
	Role    string  `json:"role"`
	StaffID *string `json:"staffId"`
}

// TrackingRequest merges courier tracking fields into an order. Absent
// fields keep their stored values.
type TrackingRequest struct {
	TrackingNumber    *string    `json:"trackingNumber,omitempty"`
	TrackingURL       *string    `json:"trackingUrl,omitempty"`
	CourierName       *string    `json:"courierName,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// RTOAddressRequest sets the return-to-origin address.
type RTOAddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country,omitempty"`
}

// FlagsRequest updates operational flags. Absent fields keep their stored
// values.
type FlagsRequest struct {
	IsPriority       *bool   `json:"isPriority,omitempty"`
	IsDelayed        *bool   `json:"isDelayed,omitempty"`
	HasIssue         *bool   `json:"hasIssue,omitempty"`
	IssueDescription *string `json:"issueDescription,omitempty"`
}

// NoteRequest appends an internal staff note.
type NoteRequest struct {
	AuthorID string `json:"authorId"`
	Text     string `json:"text"`
}

// HistoryEntryResponse is one entry of an order's status trail.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	ActorID   string    `json:"actorId"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// NoteResponse is one internal note on an order.
type NoteResponse struct {
	AuthorID  string    `json:"authorId"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// OrderItemResponse is one line item of an order.
type OrderItemResponse struct {
	SKU      string `json:"sku"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the full order view returned by GET /orders/:id.
type OrderResponse struct {
	ID              string `json:"id"`
	CommerceOrderID string `json:"commerceOrderId"`
	UserID          string `json:"userId"`
	StoreID         string `json:"storeId"`

	Status string `json:"status"`

	StoreName       string              `json:"storeName"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	ShippingAddress string              `json:"shippingAddress"`
	PrimarySKU      string              `json:"primarySku"`
	Items           []OrderItemResponse `json:"items"`

	OrderValue     int64 `json:"orderValue"`
	ProductCost    int64 `json:"productCost"`
	ShippingCost   int64 `json:"shippingCost"`
	ServiceFee     int64 `json:"serviceFee"`
	WalletDeducted int64 `json:"walletDeducted"`
	Profit         int64 `json:"profit"`

	PickerID        *string `json:"pickerId,omitempty"`
	PackerID        *string `json:"packerId,omitempty"`
	QCID            *string `json:"qcId,omitempty"`
	CourierPersonID *string `json:"courierPersonId,omitempty"`

	TrackingNumber    string     `json:"trackingNumber,omitempty"`
	TrackingURL       string     `json:"trackingUrl,omitempty"`
	CourierName       string     `json:"courierName,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`

	IsPriority       bool   `json:"isPriority"`
	IsDelayed        bool   `json:"isDelayed"`
	HasIssue         bool   `json:"hasIssue"`
	IssueDescription string `json:"issueDescription,omitempty"`

	History     []HistoryEntryResponse `json:"history"`
	Notes       []NoteResponse         `json:"notes"`
	Attachments []string               `json:"attachments"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderSummaryResponse is one row of the active order list.
type OrderSummaryResponse struct {
	ID              string    `json:"id"`
	CommerceOrderID string    `json:"commerceOrderId"`
	Status          string    `json:"status"`
	StoreName       string    `json:"storeName"`
	CustomerName    string    `json:"customerName"`
	PrimarySKU      string    `json:"primarySku"`
	OrderValue      int64     `json:"orderValue"`
	Profit          int64     `json:"profit"`
	TrackingNumber  string    `json:"trackingNumber,omitempty"`
	IsPriority      bool      `json:"isPriority"`
	IsDelayed       bool      `json:"isDelayed"`
	HasIssue        bool      `json:"hasIssue"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// StatsResponse carries the fulfillment dashboard metrics.
type StatsResponse struct {
	TotalOrders             int64            `json:"totalOrders"`
	CountsByStatus          map[string]int64 `json:"countsByStatus"`
	ActiveOrders            int64            `json:"activeOrders"`
	TotalOrderValue         int64            `json:"totalOrderValue"`
	DeliveredProfit         int64            `json:"deliveredProfit"`
	AverageFulfillmentHours float64          `json:"averageFulfillmentHours"`
	PriorityOrders          int64            `json:"priorityOrders"`
	OrdersWithIssues        int64            `json:"ordersWithIssues"`
}
