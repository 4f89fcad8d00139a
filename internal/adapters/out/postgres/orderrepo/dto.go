// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the fulfillment order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Scalar fields map to columns; the append-only collections (history, notes,
// items, attachments) are stored as jsonb documents inside the same row, so
// an aggregate is always written and read as one unit.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CommerceOrderID uuid.UUID `gorm:"type:uuid;index"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	StoreID         uuid.UUID `gorm:"type:uuid;index"`

	StoreName       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	PrimarySKU      string   `gorm:"column:primary_sku"`
	Items           ItemsDTO `gorm:"type:jsonb"`

	OrderValue     int64
	ProductCost    int64
	ShippingCost   int64
	ServiceFee     int64
	WalletDeducted int64

	Status  string     `gorm:"index"`
	History HistoryDTO `gorm:"type:jsonb"`

	PickerID        *uuid.UUID `gorm:"type:uuid"`
	PackerID        *uuid.UUID `gorm:"type:uuid"`
	QCID            *uuid.UUID `gorm:"type:uuid;column:qc_id"`
	CourierPersonID *uuid.UUID `gorm:"type:uuid"`

	TrackingNumber    string
	TrackingURL       string `gorm:"column:tracking_url"`
	CourierName       string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time

	RTOAddress RTOAddressDTO `gorm:"embedded;embeddedPrefix:rto_"`

	Notes       NotesDTO       `gorm:"type:jsonb"`
	Attachments AttachmentsDTO `gorm:"type:jsonb"`

	IsPriority       bool
	IsDelayed        bool
	HasIssue         bool
	IssueDescription string

	WalletDeductedAt time.Time
	SourcedAt        *time.Time
	PackedAt         *time.Time
	DispatchedAt     *time.Time
	ShippedAt        *time.Time
	DeliveredAt      *time.Time

	// Version is the optimistic-concurrency counter. Updates are applied
	// with a WHERE version = <loaded> predicate and bump it by one.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RTOAddressDTO represents the embedded return-to-origin address columns.
type RTOAddressDTO struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// HistoryEntryDTO is the jsonb shape of one status history entry.
type HistoryEntryDTO struct {
	Status    string    `json:"status"`
	ActorID   uuid.UUID `json:"actorId"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// HistoryDTO is the jsonb column holding the append-only status history.
type HistoryDTO []HistoryEntryDTO

// NoteDTO is the jsonb shape of one internal staff note.
type NoteDTO struct {
	AuthorID  uuid.UUID `json:"authorId"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// NotesDTO is the jsonb column holding the internal notes.
type NotesDTO []NoteDTO

// ItemDTO is the jsonb shape of one purchased line item.
type ItemDTO struct {
	SKU      string `json:"sku"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
}

// ItemsDTO is the jsonb column holding the order line items.
type ItemsDTO []ItemDTO

// AttachmentsDTO is the jsonb column holding attachment URLs.
type AttachmentsDTO []string

func (h HistoryDTO) Value() (driver.Value, error)     { return jsonValue(h) }
func (h *HistoryDTO) Scan(src any) error              { return jsonScan(src, h) }
func (n NotesDTO) Value() (driver.Value, error)       { return jsonValue(n) }
func (n *NotesDTO) Scan(src any) error                { return jsonScan(src, n) }
func (i ItemsDTO) Value() (driver.Value, error)       { return jsonValue(i) }
func (i *ItemsDTO) Scan(src any) error                { return jsonScan(src, i) }
func (a AttachmentsDTO) Value() (driver.Value, error) { return jsonValue(a) }
func (a *AttachmentsDTO) Scan(src any) error          { return jsonScan(src, a) }

func jsonValue(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func jsonScan(src, dst any) error {
	if src == nil {
		return nil
	}

	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	pricing := aggregate.Pricing()
	tracking := aggregate.Tracking()
	rto := aggregate.RTOAddress()

	history := aggregate.History()
	historyDTO := make(HistoryDTO, 0, len(history))
	for _, entry := range history {
		historyDTO = append(historyDTO, HistoryEntryDTO{
			Status:    entry.Status().String(),
			ActorID:   entry.ActorID().Bytes(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
		})
	}

	notes := aggregate.Notes()
	notesDTO := make(NotesDTO, 0, len(notes))
	for _, note := range notes {
		notesDTO = append(notesDTO, NoteDTO{
			AuthorID:  note.AuthorID().Bytes(),
			Timestamp: note.Timestamp(),
			Text:      note.Text(),
		})
	}

	itemsDTO := make(ItemsDTO, 0, len(details.Items))
	for _, item := range details.Items {
		itemsDTO = append(itemsDTO, ItemDTO{
			SKU:      item.SKU,
			Variant:  item.Variant,
			Quantity: item.Quantity,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CommerceOrderID: aggregate.CommerceOrderID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		StoreID:         aggregate.StoreID().Bytes(),

		StoreName:       details.StoreName,
		CustomerName:    details.CustomerName,
		CustomerEmail:   details.CustomerEmail,
		CustomerPhone:   details.CustomerPhone,
		ShippingAddress: details.ShippingAddress,
		PrimarySKU:      details.PrimarySKU,
		Items:           itemsDTO,

		OrderValue:     pricing.OrderValue.Amount(),
		ProductCost:    pricing.ProductCost.Amount(),
		ShippingCost:   pricing.ShippingCost.Amount(),
		ServiceFee:     pricing.ServiceFee.Amount(),
		WalletDeducted: pricing.WalletDeducted.Amount(),

		Status:  aggregate.Status().String(),
		History: historyDTO,

		PickerID:        uuidPtr(aggregate.Picker()),
		PackerID:        uuidPtr(aggregate.Packer()),
		QCID:            uuidPtr(aggregate.QC()),
		CourierPersonID: uuidPtr(aggregate.CourierPerson()),

		TrackingNumber:    tracking.Number(),
		TrackingURL:       tracking.URL(),
		CourierName:       tracking.CourierName(),
		EstimatedDelivery: tracking.EstimatedDelivery(),
		ActualDelivery:    tracking.ActualDelivery(),

		RTOAddress: RTOAddressDTO{
			Line1:      rto.Line1(),
			Line2:      rto.Line2(),
			City:       rto.City(),
			State:      rto.State(),
			PostalCode: rto.PostalCode(),
			Country:    rto.Country(),
		},

		Notes:       notesDTO,
		Attachments: aggregate.Attachments(),

		IsPriority:       aggregate.IsPriority(),
		IsDelayed:        aggregate.IsDelayed(),
		HasIssue:         aggregate.HasIssue(),
		IssueDescription: aggregate.IssueDescription(),

		WalletDeductedAt: aggregate.WalletDeductedAt(),
		SourcedAt:        aggregate.SourcedAt(),
		PackedAt:         aggregate.PackedAt(),
		DispatchedAt:     aggregate.DispatchedAt(),
		ShippedAt:        aggregate.ShippedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),

		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	commerceOrderID, err := kernel.UUIDFromBytes(dto.CommerceOrderID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusHistoryEntry, 0, len(dto.History))
	for _, entry := range dto.History {
		entryStatus, statusErr := order.ParseStatus(entry.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		actorID, actorErr := kernel.UUIDFromBytes(entry.ActorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		history = append(history, order.RestoreStatusHistoryEntry(entryStatus, actorID, entry.Timestamp, entry.Note))
	}

	notes := make([]order.InternalNote, 0, len(dto.Notes))
	for _, note := range dto.Notes {
		authorID, authorErr := kernel.UUIDFromBytes(note.AuthorID[:])
		if authorErr != nil {
			return nil, authorErr
		}
		notes = append(notes, order.RestoreInternalNote(authorID, note.Timestamp, note.Text))
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			SKU:      item.SKU,
			Variant:  item.Variant,
			Quantity: item.Quantity,
		})
	}

	pickerID, err := kernelUUIDPtr(dto.PickerID)
	if err != nil {
		return nil, err
	}
	packerID, err := kernelUUIDPtr(dto.PackerID)
	if err != nil {
		return nil, err
	}
	qcID, err := kernelUUIDPtr(dto.QCID)
	if err != nil {
		return nil, err
	}
	courierPersonID, err := kernelUUIDPtr(dto.CourierPersonID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		CommerceOrderID: commerceOrderID,
		UserID:          userID,
		StoreID:         storeID,

		Details: order.Details{
			StoreName:       dto.StoreName,
			CustomerName:    dto.CustomerName,
			CustomerEmail:   dto.CustomerEmail,
			CustomerPhone:   dto.CustomerPhone,
			ShippingAddress: dto.ShippingAddress,
			PrimarySKU:      dto.PrimarySKU,
			Items:           items,
		},
		Pricing: order.Pricing{
			OrderValue:     kernel.MoneyFromInt64(dto.OrderValue),
			ProductCost:    kernel.MoneyFromInt64(dto.ProductCost),
			ShippingCost:   kernel.MoneyFromInt64(dto.ShippingCost),
			ServiceFee:     kernel.MoneyFromInt64(dto.ServiceFee),
			WalletDeducted: kernel.MoneyFromInt64(dto.WalletDeducted),
		},

		Status:  status,
		History: history,

		PickerID:        pickerID,
		PackerID:        packerID,
		QCID:            qcID,
		CourierPersonID: courierPersonID,

		Tracking: order.RestoreTrackingInfo(
			dto.TrackingNumber, dto.TrackingURL, dto.CourierName,
			dto.EstimatedDelivery, dto.ActualDelivery,
		),
		RTOAddress: order.NewRTOAddress(
			dto.RTOAddress.Line1, dto.RTOAddress.Line2, dto.RTOAddress.City,
			dto.RTOAddress.State, dto.RTOAddress.PostalCode, dto.RTOAddress.Country,
		),

		Notes:       notes,
		Attachments: dto.Attachments,

		IsPriority:       dto.IsPriority,
		IsDelayed:        dto.IsDelayed,
		HasIssue:         dto.HasIssue,
		IssueDescription: dto.IssueDescription,

		WalletDeductedAt: dto.WalletDeductedAt,
		SourcedAt:        dto.SourcedAt,
		PackedAt:         dto.PackedAt,
		DispatchedAt:     dto.DispatchedAt,
		ShippedAt:        dto.ShippedAt,
		DeliveredAt:      dto.DeliveredAt,

		Version: dto.Version,
	})
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
