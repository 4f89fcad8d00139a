// Package order provides domain entities and business logic for fulfillment
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, money, metadata, and lifecycle
//   - Status: A state machine that enforces valid fulfillment status transitions
//   - StatusHistoryEntry: The append-only audit trail of accepted transitions
//   - TrackingInfo, RTOAddress, InternalNote: supporting value objects
//
// Key business rules:
//   - Status follows the main path pending -> ... -> delivered, with an RTO
//     branch and cancelled/failed side branches; administrators may skip ahead
//   - delivered, returned and cancelled are terminal
//   - failed may retry to pending or abandon to cancelled
//   - Profit is derived from the monetary fields and never settable
//   - Stage timestamps record the first reach of each milestone status
//   - Staff assignment, tracking, flags, and notes are independent of status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
