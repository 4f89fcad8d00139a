package order

import (
	"time"
)

// TrackingInfo holds courier tracking details for an order.
// All fields are empty/nil until the corresponding information is supplied.
// TrackingInfo is a value object; updates produce a new value via merge.
type TrackingInfo struct {
	number            string
	url               string
	courierName       string
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
}

// TrackingUpdate is a partial update of tracking details: only non-nil
// fields are applied.
type TrackingUpdate struct {
	Number            *string
	URL               *string
	CourierName       *string
	EstimatedDelivery *time.Time
}

// RestoreTrackingInfo reconstructs persisted tracking details.
func RestoreTrackingInfo(number, url, courierName string, estimatedDelivery, actualDelivery *time.Time) TrackingInfo {
	return TrackingInfo{
		number:            number,
		url:               url,
		courierName:       courierName,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
	}
}

// merge applies the supplied fields of a TrackingUpdate, returning the new
// value and whether a tracking number was newly set (previously empty).
func (t TrackingInfo) merge(update TrackingUpdate) (TrackingInfo, bool) {
	merged := t
	numberNewlySet := false

	if update.Number != nil {
		if t.number == "" && *update.Number != "" {
			numberNewlySet = true
		}
		merged.number = *update.Number
	}
	if update.URL != nil {
		merged.url = *update.URL
	}
	if update.CourierName != nil {
		merged.courierName = *update.CourierName
	}
	if update.EstimatedDelivery != nil {
		estimated := *update.EstimatedDelivery
		merged.estimatedDelivery = &estimated
	}

	return merged, numberNewlySet
}

// withActualDelivery returns the tracking info with the actual delivery
// date set, if it has not been set before.
func (t TrackingInfo) withActualDelivery(at time.Time) TrackingInfo {
	if t.actualDelivery != nil {
		return t
	}
	updated := t
	updated.actualDelivery = &at
	return updated
}

// Number returns the courier tracking number, or "".
func (t TrackingInfo) Number() string {
	return t.number
}

// URL returns the tracking URL, or "".
func (t TrackingInfo) URL() string {
	return t.url
}

// CourierName returns the courier provider name, or "".
func (t TrackingInfo) CourierName() string {
	return t.courierName
}

// EstimatedDelivery returns the estimated delivery date, or nil.
func (t TrackingInfo) EstimatedDelivery() *time.Time {
	return t.estimatedDelivery
}

// ActualDelivery returns the actual delivery date, or nil.
func (t TrackingInfo) ActualDelivery() *time.Time {
	return t.actualDelivery
}
