package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusHistoryEntry records one accepted status transition on an order.
// Entries are immutable once appended and are owned exclusively by their
// parent order; the history as a whole is append-only and order-preserving.
type StatusHistoryEntry struct {
	status    Status
	actorID   kernel.UUID
	timestamp time.Time
	note      string
}

// NewStatusHistoryEntry creates a history entry for an accepted transition.
// The note may be empty.
func NewStatusHistoryEntry(status Status, actorID kernel.UUID, timestamp time.Time, note string) (StatusHistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}
	if err := actorID.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}

	return StatusHistoryEntry{
		status:    status,
		actorID:   actorID,
		timestamp: timestamp,
		note:      note,
	}, nil
}

// RestoreStatusHistoryEntry reconstructs a persisted history entry without
// re-running actor validation; persistence is trusted.
func RestoreStatusHistoryEntry(status Status, actorID kernel.UUID, timestamp time.Time, note string) StatusHistoryEntry {
	return StatusHistoryEntry{
		status:    status,
		actorID:   actorID,
		timestamp: timestamp,
		note:      note,
	}
}

// Status returns the status recorded by this entry.
func (e StatusHistoryEntry) Status() Status {
	return e.status
}

// ActorID returns the identity that performed the transition.
func (e StatusHistoryEntry) ActorID() kernel.UUID {
	return e.actorID
}

// Timestamp returns when the transition was accepted.
func (e StatusHistoryEntry) Timestamp() time.Time {
	return e.timestamp
}

// Note returns the free-text note attached to the transition, or "".
func (e StatusHistoryEntry) Note() string {
	return e.note
}
