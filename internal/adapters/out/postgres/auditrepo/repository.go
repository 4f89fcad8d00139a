// Package auditrepo persists the append-only audit trail of order
// mutations. Rows are only ever inserted; there is no update or delete
// path by design of the trail, and reads happen through external tooling.
package auditrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRecordDTO is one audit trail row.
type AuditRecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID   uuid.UUID `gorm:"type:uuid;index"`
	Action    string    `gorm:"index"`
	Success   bool
	Details   string
	Origin    string
	Timestamp time.Time
}

// TableName specifies the database table name for audit records.
func (AuditRecordDTO) TableName() string {
	return "audit_records"
}

// GormAuditSink implements ports.AuditSink with plain inserts.
type GormAuditSink struct {
	db *gorm.DB
}

// NewGormAuditSink creates an audit sink over the given connection.
func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

// Record appends one audit row.
func (s *GormAuditSink) Record(ctx context.Context, record ports.AuditRecord) error {
	timestamp := record.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	dto := AuditRecordDTO{
		ID:        uuid.New(),
		ActorID:   record.ActorID.Bytes(),
		Action:    record.Action,
		Success:   record.Success,
		Details:   record.Details,
		Origin:    record.Origin,
		Timestamp: timestamp,
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}
