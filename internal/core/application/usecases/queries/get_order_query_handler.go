package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order read model from the database.
// Reads bypass the aggregate and repository layers and scan the row directly
// into the response struct.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order does not exist
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// historyEntryPayload mirrors the jsonb encoding of a history entry.
type historyEntryPayload struct {
	Status    string    `json:"status"`
	ActorID   uuid.UUID `json:"actorId"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// notePayload mirrors the jsonb encoding of an internal note.
type notePayload struct {
	AuthorID  uuid.UUID `json:"authorId"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// itemPayload mirrors the jsonb encoding of a line item.
type itemPayload struct {
	SKU      string `json:"sku"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
}

// Handle executes the query and returns the full order view.
// Returns ObjectNotFoundError when no order with the given ID exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			commerce_order_id,
			user_id,
			store_id,
			status,
			store_name,
			customer_name,
			customer_email,
			customer_phone,
			shipping_address,
			primary_sku,
			items,
			order_value,
			product_cost,
			shipping_cost,
			service_fee,
			wallet_deducted,
			picker_id,
			packer_id,
			qc_id,
			courier_person_id,
			tracking_number,
			tracking_url,
			courier_name,
			estimated_delivery,
			actual_delivery,
			is_priority,
			is_delayed,
			has_issue,
			issue_description,
			history,
			notes,
			attachments,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp        GetOrderQueryResponse
		id          uuid.UUID
		commerceID  uuid.UUID
		userID      uuid.UUID
		storeID     uuid.UUID
		picker      uuid.NullUUID
		packer      uuid.NullUUID
		qc          uuid.NullUUID
		courier     uuid.NullUUID
		items       []byte
		history     []byte
		notes       []byte
		attachments []byte
	)

	err := row.Scan(
		&id,
		&commerceID,
		&userID,
		&storeID,
		&resp.Status,
		&resp.StoreName,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.ShippingAddress,
		&resp.PrimarySKU,
		&items,
		&resp.OrderValue,
		&resp.ProductCost,
		&resp.ShippingCost,
		&resp.ServiceFee,
		&resp.WalletDeducted,
		&picker,
		&packer,
		&qc,
		&courier,
		&resp.TrackingNumber,
		&resp.TrackingURL,
		&resp.CourierName,
		&resp.EstimatedDelivery,
		&resp.ActualDelivery,
		&resp.IsPriority,
		&resp.IsDelayed,
		&resp.HasIssue,
		&resp.IssueDescription,
		&history,
		&notes,
		&attachments,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CommerceOrderID, err = kernel.UUIDFromBytes(commerceID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.StoreID, err = kernel.UUIDFromBytes(storeID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.PickerID, err = optionalUUID(picker)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.PackerID, err = optionalUUID(packer)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.QCID, err = optionalUUID(qc)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CourierPersonID, err = optionalUUID(courier)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Profit = resp.OrderValue - resp.ProductCost - resp.ShippingCost - resp.ServiceFee

	resp.Items, err = decodeItems(items)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.History, err = decodeHistory(history)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Notes, err = decodeNotes(notes)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(attachments) > 0 {
		if err = json.Unmarshal(attachments, &resp.Attachments); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return resp, nil
}

func optionalUUID(value uuid.NullUUID) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(value.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func decodeItems(raw []byte) ([]OrderItemView, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var payload []itemPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	views := make([]OrderItemView, 0, len(payload))
	for _, item := range payload {
		views = append(views, OrderItemView{
			SKU:      item.SKU,
			Variant:  item.Variant,
			Quantity: item.Quantity,
		})
	}
	return views, nil
}

func decodeHistory(raw []byte) ([]OrderHistoryView, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var payload []historyEntryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	views := make([]OrderHistoryView, 0, len(payload))
	for _, entry := range payload {
		actorID, err := kernel.UUIDFromBytes(entry.ActorID[:])
		if err != nil {
			return nil, err
		}
		views = append(views, OrderHistoryView{
			Status:    entry.Status,
			ActorID:   actorID,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}
	return views, nil
}

func decodeNotes(raw []byte) ([]OrderNoteView, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var payload []notePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	views := make([]OrderNoteView, 0, len(payload))
	for _, note := range payload {
		authorID, err := kernel.UUIDFromBytes(note.AuthorID[:])
		if err != nil {
			return nil, err
		}
		views = append(views, OrderNoteView{
			AuthorID:  authorID,
			Timestamp: note.Timestamp,
			Text:      note.Text,
		})
	}
	return views, nil
}
