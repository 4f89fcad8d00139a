// Package commercerepo mirrors fulfillment state onto the commerce-side
// order record. The storefront reads this table; the fulfillment order
// stays the source of truth, so writes here are upserts of a convenience
// copy, fired best-effort after a fulfillment commit.
package commercerepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommerceOrderDTO is the denormalized commerce-side order row. Only the
// columns the projection owns are ever written by this adapter.
type CommerceOrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Status string

	TrackingNumber    string
	TrackingURL       string `gorm:"column:tracking_url"`
	CourierName       string
	EstimatedDelivery *time.Time

	UpdatedAt time.Time
}

// TableName maps the DTO onto the storefront's orders table.
func (CommerceOrderDTO) TableName() string {
	return "commerce_orders"
}

// GormCommerceProjector implements ports.CommerceProjector using GORM
// upserts, so a projection arriving before the commerce row exists still
// lands.
type GormCommerceProjector struct {
	db *gorm.DB
}

// NewGormCommerceProjector creates a projector over the given connection.
func NewGormCommerceProjector(db *gorm.DB) *GormCommerceProjector {
	return &GormCommerceProjector{db: db}
}

// ProjectStatus upserts the coarse status of the commerce order.
func (p *GormCommerceProjector) ProjectStatus(ctx context.Context, commerceOrderID kernel.UUID, coarseStatus string) error {
	dto := CommerceOrderDTO{
		ID:     commerceOrderID.Bytes(),
		Status: coarseStatus,
	}

	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&dto).Error
}

// ProjectTracking upserts the tracking fields of the commerce order.
// Nil fields of the update are left untouched.
func (p *GormCommerceProjector) ProjectTracking(ctx context.Context, commerceOrderID kernel.UUID, update ports.TrackingProjection) error {
	dto := CommerceOrderDTO{ID: commerceOrderID.Bytes()}
	columns := make([]string, 0, 5)

	if update.TrackingNumber != nil {
		dto.TrackingNumber = *update.TrackingNumber
		columns = append(columns, "tracking_number")
	}
	if update.TrackingURL != nil {
		dto.TrackingURL = *update.TrackingURL
		columns = append(columns, "tracking_url")
	}
	if update.CourierName != nil {
		dto.CourierName = *update.CourierName
		columns = append(columns, "courier_name")
	}
	if update.EstimatedDelivery != nil {
		dto.EstimatedDelivery = update.EstimatedDelivery
		columns = append(columns, "estimated_delivery")
	}

	if len(columns) == 0 {
		return nil
	}
	columns = append(columns, "updated_at")

	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(&dto).Error
}
