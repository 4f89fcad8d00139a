package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Item is one purchased line of the order, denormalized for display.
type Item struct {
	SKU      string
	Variant  string
	Quantity int
}

// Details carries the denormalized display fields captured at order creation.
type Details struct {
	StoreName       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	PrimarySKU      string
	Items           []Item
}

// Pricing carries the monetary fields of the order in minor-currency units.
// Profit is not part of Pricing: it is derived, never independently settable.
type Pricing struct {
	OrderValue     kernel.Money
	ProductCost    kernel.Money
	ShippingCost   kernel.Money
	ServiceFee     kernel.Money
	WalletDeducted kernel.Money
}

// FlagsUpdate is a partial update of the order's operational flags: only
// non-nil fields are applied. Flags are orthogonal to the status machine
// and stay mutable in terminal states.
type FlagsUpdate struct {
	IsPriority       *bool
	IsDelayed        *bool
	HasIssue         *bool
	IssueDescription *string
}

// Order is the aggregate root tracking one purchased, wallet-funded order
// through sourcing, packing, dispatch, delivery, and return-to-origin.
//
// Order maintains these invariants:
//   - status transitions follow the Status policy
//   - status history is append-only and order-preserving
//   - profit is always orderValue - productCost - shippingCost - serviceFee
//   - each stage timestamp is set exactly once, when its status is first
//     reached through ChangeStatus (skipped stages keep nil timestamps;
//     that is expected under administrator skip-ahead, not a data defect)
//
// Staff assignment, tracking, the RTO address, flags, notes, and attachments
// are deliberately outside the status machine's invariants: they stay
// mutable at any point in the lifecycle, including after a terminal status,
// so post-delivery corrections remain possible.
type Order struct {
	id              kernel.UUID
	commerceOrderID kernel.UUID
	userID          kernel.UUID
	storeID         kernel.UUID

	details Details

	pricing Pricing

	status  Status
	history []StatusHistoryEntry

	pickerID        *kernel.UUID
	packerID        *kernel.UUID
	qcID            *kernel.UUID
	courierPersonID *kernel.UUID

	tracking   TrackingInfo
	rtoAddress RTOAddress

	notes       []InternalNote
	attachments []string

	isPriority       bool
	isDelayed        bool
	hasIssue         bool
	issueDescription string

	walletDeductedAt time.Time
	sourcedAt        *time.Time
	packedAt         *time.Time
	dispatchedAt     *time.Time
	shippedAt        *time.Time
	deliveredAt      *time.Time

	// version supports optimistic concurrency in the persistence layer;
	// it is bumped on every successful write.
	version int64

	isConstructed bool
}

// NewOrder creates a fulfillment order in Pending status with its seed
// history entry. It is invoked exactly once per successfully wallet-funded
// purchase; now becomes walletDeductedAt.
func NewOrder(
	id, commerceOrderID, userID, storeID kernel.UUID,
	details Details,
	pricing Pricing,
	actorID kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:           Pending,
		details:          details,
		pricing:          pricing,
		rtoAddress:       EmptyRTOAddress(),
		walletDeductedAt: now,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCommerceOrderID(commerceOrderID),
		o.setUserID(userID),
		o.setStoreID(storeID),
	); err != nil {
		return nil, err
	}

	seed, err := NewStatusHistoryEntry(Pending, actorID, now, "")
	if err != nil {
		return nil, err
	}
	o.history = []StatusHistoryEntry{seed}

	return o, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an Order.
type RestoreOrderParams struct {
	ID              kernel.UUID
	CommerceOrderID kernel.UUID
	UserID          kernel.UUID
	StoreID         kernel.UUID

	Details Details
	Pricing Pricing

	Status  Status
	History []StatusHistoryEntry

	PickerID        *kernel.UUID
	PackerID        *kernel.UUID
	QCID            *kernel.UUID
	CourierPersonID *kernel.UUID

	Tracking   TrackingInfo
	RTOAddress RTOAddress

	Notes       []InternalNote
	Attachments []string

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

	Version int64
}

// RestoreOrder reconstructs an order from persistence. The stored status is
// validated; the rest of the persisted state is trusted.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if params.Version < 0 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}

	rto := params.RTOAddress
	if rto.Country() == "" {
		rto = EmptyRTOAddress()
	}

	return &Order{
		id:               params.ID,
		commerceOrderID:  params.CommerceOrderID,
		userID:           params.UserID,
		storeID:          params.StoreID,
		details:          params.Details,
		pricing:          params.Pricing,
		status:           params.Status,
		history:          params.History,
		pickerID:         params.PickerID,
		packerID:         params.PackerID,
		qcID:             params.QCID,
		courierPersonID:  params.CourierPersonID,
		tracking:         params.Tracking,
		rtoAddress:       rto,
		notes:            params.Notes,
		attachments:      params.Attachments,
		isPriority:       params.IsPriority,
		isDelayed:        params.IsDelayed,
		hasIssue:         params.HasIssue,
		issueDescription: params.IssueDescription,
		walletDeductedAt: params.WalletDeductedAt,
		sourcedAt:        params.SourcedAt,
		packedAt:         params.PackedAt,
		dispatchedAt:     params.DispatchedAt,
		shippedAt:        params.ShippedAt,
		deliveredAt:      params.DeliveredAt,
		version:          params.Version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ChangeStatus applies a status transition after consulting the policy.
//
// On success it sets the matched stage timestamp (first reach only), appends
// one history entry, and for Delivered also records the actual delivery date
// on the tracking info. On rejection it returns an *InvalidTransitionError
// carrying the currently valid target set; requesting the already-current
// status is always a rejection, since no status is in its own valid set.
func (o *Order) ChangeStatus(target Status, actorID kernel.UUID, note string, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	entry, err := NewStatusHistoryEntry(newStatus, actorID, now, note)
	if err != nil {
		return err
	}

	o.setStageTimestamp(newStatus, now)
	o.status = newStatus
	o.history = append(o.history, entry)
	return nil
}

// setStageTimestamp records the first time a milestone status is reached.
// Re-reaching a milestone (e.g. Pending -> Failed -> Pending -> Sourced)
// never overwrites the original timestamp.
func (o *Order) setStageTimestamp(status Status, now time.Time) {
	stamp := func(field **time.Time) {
		if *field == nil {
			at := now
			*field = &at
		}
	}

	switch status {
	case Sourced:
		stamp(&o.sourcedAt)
	case Packed:
		stamp(&o.packedAt)
	case Dispatched:
		stamp(&o.dispatchedAt)
	case Shipped:
		stamp(&o.shippedAt)
	case Delivered:
		stamp(&o.deliveredAt)
		o.tracking = o.tracking.withActualDelivery(now)
	default:
	}
}

// SetAssignment assigns or clears the staff reference for the given role.
// Assignment is not status-gated; it is valid on terminal orders.
func (o *Order) SetAssignment(role StaffRole, staffID *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	switch role {
	case RolePicker:
		o.pickerID = staffID
	case RolePacker:
		o.packerID = staffID
	case RoleQC:
		o.qcID = staffID
	case RoleCourierPerson:
		o.courierPersonID = staffID
	default:
		return errs.NewValueIsInvalidError("staff role")
	}
	return nil
}

// ApplyTrackingUpdate merges the supplied tracking fields. It reports
// whether a tracking number was newly set (previously empty), which is the
// trigger for the customer notification side-effect.
func (o *Order) ApplyTrackingUpdate(update TrackingUpdate) bool {
	merged, numberNewlySet := o.tracking.merge(update)
	o.tracking = merged
	return numberNewlySet
}

// SetRTOAddress overwrites the RTO address in full.
func (o *Order) SetRTOAddress(address RTOAddress) {
	o.rtoAddress = address
}

// AddNote appends a staff note. Notes are append-only.
func (o *Order) AddNote(authorID kernel.UUID, text string, now time.Time) error {
	note, err := NewInternalNote(authorID, now, text)
	if err != nil {
		return err
	}
	o.notes = append(o.notes, note)
	return nil
}

// RenderedNotes concatenates all notes into the legacy single-blob display
// format, one "[timestamp author] text" line per note.
func (o *Order) RenderedNotes() string {
	lines := make([]string, len(o.notes))
	for i, n := range o.notes {
		lines[i] = n.render()
	}
	return strings.Join(lines, "\n")
}

// SetFlags applies the supplied flag fields. Flags are orthogonal to the
// status machine and may be changed in any state.
func (o *Order) SetFlags(update FlagsUpdate) {
	if update.IsPriority != nil {
		o.isPriority = *update.IsPriority
	}
	if update.IsDelayed != nil {
		o.isDelayed = *update.IsDelayed
	}
	if update.HasIssue != nil {
		o.hasIssue = *update.HasIssue
	}
	if update.IssueDescription != nil {
		o.issueDescription = *update.IssueDescription
	}
}

// AddAttachment appends an opaque attachment URL.
func (o *Order) AddAttachment(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("attachment url")
	}
	o.attachments = append(o.attachments, url)
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CommerceOrderID returns the reference to the originating commerce order.
func (o *Order) CommerceOrderID() kernel.UUID {
	return o.commerceOrderID
}

// UserID returns the owning user reference.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// StoreID returns the owning store reference.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Details returns the denormalized display fields.
func (o *Order) Details() Details {
	return o.details
}

// Pricing returns the monetary fields.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Profit returns the derived margin:
// orderValue - productCost - shippingCost - serviceFee.
// It is computed on demand and therefore always consistent with the
// underlying monetary fields.
func (o *Order) Profit() kernel.Money {
	return o.pricing.OrderValue.
		Sub(o.pricing.ProductCost).
		Sub(o.pricing.ShippingCost).
		Sub(o.pricing.ServiceFee)
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the status history in append order.
func (o *Order) History() []StatusHistoryEntry {
	return slices.Clone(o.history)
}

// PreviousStatus returns the status the order held immediately before the
// most recent transition. For a freshly created order it returns the
// current (seed) status.
func (o *Order) PreviousStatus() Status {
	if len(o.history) < 2 {
		return o.status
	}
	return o.history[len(o.history)-2].Status()
}

// Picker returns the assigned picker reference, or nil.
func (o *Order) Picker() *kernel.UUID { return o.pickerID }

// Packer returns the assigned packer reference, or nil.
func (o *Order) Packer() *kernel.UUID { return o.packerID }

// QC returns the assigned QC reviewer reference, or nil.
func (o *Order) QC() *kernel.UUID { return o.qcID }

// CourierPerson returns the assigned courier-person reference, or nil.
func (o *Order) CourierPerson() *kernel.UUID { return o.courierPersonID }

// Assignment returns the staff reference for the given role, or nil.
func (o *Order) Assignment(role StaffRole) *kernel.UUID {
	switch role {
	case RolePicker:
		return o.pickerID
	case RolePacker:
		return o.packerID
	case RoleQC:
		return o.qcID
	case RoleCourierPerson:
		return o.courierPersonID
	default:
		return nil
	}
}

// Tracking returns the courier tracking details.
func (o *Order) Tracking() TrackingInfo {
	return o.tracking
}

// RTOAddress returns the return-to-origin address.
func (o *Order) RTOAddress() RTOAddress {
	return o.rtoAddress
}

// Notes returns a copy of the internal notes in append order.
func (o *Order) Notes() []InternalNote {
	return slices.Clone(o.notes)
}

// Attachments returns a copy of the attachment URLs in append order.
func (o *Order) Attachments() []string {
	return slices.Clone(o.attachments)
}

// IsPriority reports the priority flag.
func (o *Order) IsPriority() bool { return o.isPriority }

// IsDelayed reports the delayed flag.
func (o *Order) IsDelayed() bool { return o.isDelayed }

// HasIssue reports the issue flag.
func (o *Order) HasIssue() bool { return o.hasIssue }

// IssueDescription returns the issue description, or "".
func (o *Order) IssueDescription() string { return o.issueDescription }

// WalletDeductedAt returns when the wallet was charged; always set.
func (o *Order) WalletDeductedAt() time.Time { return o.walletDeductedAt }

// SourcedAt returns when Sourced was first reached, or nil.
func (o *Order) SourcedAt() *time.Time { return o.sourcedAt }

// PackedAt returns when Packed was first reached, or nil.
func (o *Order) PackedAt() *time.Time { return o.packedAt }

// DispatchedAt returns when Dispatched was first reached, or nil.
func (o *Order) DispatchedAt() *time.Time { return o.dispatchedAt }

// ShippedAt returns when Shipped was first reached, or nil.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// DeliveredAt returns when Delivered was first reached, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// Version returns the optimistic-concurrency version of the loaded snapshot.
func (o *Order) Version() int64 {
	return o.version
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCommerceOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.commerceOrderID = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func (o *Order) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.storeID = id
	return nil
}
