package order

import (
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// The main path runs forward from Pending to Delivered. Administrators may
// skip ahead to any later main-path status in a single transition. A parallel
// return-to-origin path runs RTOInitiated -> RTODelivered -> Returned.
// Cancelled and Failed are side branches reachable from most states.
// Delivered, Returned, and Cancelled are terminal: no transition ever
// leaves them. Failed is the one status allowed to move backward, to Pending
// (retry) or Cancelled (abandon).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set when the order is created
	// alongside the wallet deduction.
	Pending

	// Sourcing indicates the supplier purchase is in progress.
	Sourcing

	// Sourced indicates the goods have been obtained from the supplier.
	Sourced

	// Packing indicates the order is being packed.
	Packing

	// Packed indicates the parcel is sealed and awaiting dispatch staging.
	Packed

	// ReadyForDispatch indicates the parcel is staged for courier pickup.
	ReadyForDispatch

	// Dispatched indicates the parcel has been handed to the courier.
	Dispatched

	// Shipped indicates the parcel is in transit.
	Shipped

	// OutForDelivery indicates the parcel is on its final delivery leg.
	OutForDelivery

	// Delivered indicates the parcel reached the customer. Terminal.
	Delivered

	// RTOInitiated indicates a return-to-origin has been started.
	RTOInitiated

	// RTODelivered indicates the returned parcel reached the warehouse.
	RTODelivered

	// Returned indicates the return is fully processed. Terminal.
	Returned

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled

	// Failed indicates fulfillment failed; the order may be retried
	// (back to Pending) or cancelled.
	Failed
)

// mainPath is the forward progression of the primary fulfillment sequence.
var mainPath = []Status{
	Pending, Sourcing, Sourced, Packing, Packed,
	ReadyForDispatch, Dispatched, Shipped, OutForDelivery, Delivered,
}

// rtoPath is the forward progression of the return-to-origin sequence.
var rtoPath = []Status{RTOInitiated, RTODelivered, Returned}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		Sourcing:         "sourcing",
		Sourced:          "sourced",
		Packing:          "packing",
		Packed:           "packed",
		ReadyForDispatch: "ready_for_dispatch",
		Dispatched:       "dispatched",
		Shipped:          "shipped",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
		RTOInitiated:     "rto_initiated",
		RTODelivered:     "rto_delivered",
		Returned:         "returned",
		Cancelled:        "cancelled",
		Failed:           "failed",
	}
}

// ParseStatus converts a snake_case status string to its Status value.
// Returns an error for unrecognized or empty strings.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is a member of the enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Humanize returns the status formatted for customer-facing messages:
// underscores replaced with spaces, upper-cased.
func (s Status) Humanize() string {
	return strings.ToUpper(strings.ReplaceAll(s.String(), "_", " "))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// ValidTransitions returns every status this status may legally move to.
// The function is pure and total over the enumeration; a status is never
// a member of its own valid set.
//
// Policy:
//   - terminal statuses return an empty set
//   - Failed may move to Pending (retry) or Cancelled (abandon)
//   - an RTO-path status may move to any later RTO-path status,
//     plus Cancelled and Failed
//   - a main-path status may move to any later main-path status
//     (administrator skip-ahead), plus RTOInitiated, Cancelled, and Failed
func (s Status) ValidTransitions() []Status {
	if s.IsTerminal() {
		return []Status{}
	}

	if s == Failed {
		return []Status{Pending, Cancelled}
	}

	if idx := slices.Index(rtoPath, s); idx >= 0 {
		targets := slices.Clone(rtoPath[idx+1:])
		return append(targets, Cancelled, Failed)
	}

	idx := slices.Index(mainPath, s)
	if idx < 0 {
		return []Status{}
	}
	targets := slices.Clone(mainPath[idx+1:])
	// Delivered sits at the end of the main path slice and is terminal,
	// but as a target it is always reachable going forward.
	return append(targets, RTOInitiated, Cancelled, Failed)
}

// CanTransitionTo reports whether a transition from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(s.ValidTransitions(), target)
}

// Transition validates and performs a transition, returning the new status.
// On rejection it returns an InvalidTransitionError carrying the current
// status, the rejected target, and the currently valid target set so callers
// can re-render their options.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
