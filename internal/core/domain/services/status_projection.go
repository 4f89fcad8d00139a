package services

import (
	"fulfillment/internal/core/domain/model/order"
)

// StatusProjection maps the fine-grained fulfillment status onto the coarse
// status vocabulary stored on the commerce-side order record. The storefront
// does not distinguish intermediate warehouse stages, and it has no notion
// of a cancelled fulfillment, so several fine statuses collapse.
type StatusProjection struct{}

// NewStatusProjection creates a new StatusProjection instance.
func NewStatusProjection() StatusProjection {
	return StatusProjection{}
}

var coarseOverrides = map[order.Status]string{
	order.Sourcing:  "sourcing",
	order.Sourced:   "sourcing",
	order.Packing:   "packing",
	order.Packed:    "packing",
	order.Cancelled: "failed",
}

// Project returns the coarse commerce-side status for the given fulfillment
// status. Statuses without an override project to their own name.
func (p StatusProjection) Project(status order.Status) string {
	if coarse, ok := coarseOverrides[status]; ok {
		return coarse
	}
	return status.String()
}
