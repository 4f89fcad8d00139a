package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// CommerceProjector pushes denormalized fulfillment state onto the
// commerce-side order record. Projections are best-effort: the commerce
// record is a convenience copy, the fulfillment order stays the source
// of truth.
type CommerceProjector interface {
	// ProjectStatus upserts the coarse status of the commerce order.
	ProjectStatus(ctx context.Context, commerceOrderID kernel.UUID, coarseStatus string) error

	// ProjectTracking upserts the tracking fields of the commerce order.
	ProjectTracking(ctx context.Context, commerceOrderID kernel.UUID, update TrackingProjection) error
}

// TrackingProjection carries the tracking fields mirrored onto the
// commerce order record. Nil fields are left untouched.
type TrackingProjection struct {
	TrackingNumber    *string
	TrackingURL       *string
	CourierName       *string
	EstimatedDelivery *time.Time
}

// Notifier delivers a user-facing notification about an order event.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// Notification is the payload handed to the Notifier.
type Notification struct {
	UserID   kernel.UUID
	Type     string
	Title    string
	Message  string
	Link     string
	Metadata map[string]string
}

// AuditSink records who did what to which order. Audit writes are
// best-effort and never block or fail the command that triggered them.
type AuditSink interface {
	Record(ctx context.Context, record AuditRecord) error
}

// AuditRecord is one append-only audit trail row.
type AuditRecord struct {
	ActorID   kernel.UUID
	Action    string
	Success   bool
	Details   string
	Origin    string
	Timestamp time.Time
}
