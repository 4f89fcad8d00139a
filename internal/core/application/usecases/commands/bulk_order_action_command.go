package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

// Bulk action names accepted by BulkOrderActionCommandHandler. The action
// is carried as a string so an unrecognized name flows through to the
// handler and fails every item instead of failing the request wholesale.
const (
	BulkActionUpdateStatus   = "update_status"
	BulkActionAssignPicker   = "assign_picker"
	BulkActionAssignPacker   = "assign_packer"
	BulkActionMarkPriority   = "mark_priority"
	BulkActionUnmarkPriority = "unmark_priority"
)

var (
	ErrBulkOrderActionCommandIsNotConstructed = errors.New(
		"BulkOrderActionCommand must be created via NewBulkOrderActionCommand constructor",
	)
	ErrBulkActionIsRequired  = errors.New("bulk action is required")
	ErrBulkOrderIDsAreEmpty  = errors.New("bulk action needs at least one order")
	ErrUnknownBulkAction     = errors.New("unknown bulk action")
	ErrBulkStaffIDIsRequired = errors.New("staff id is required for assignment actions")
	ErrBulkTargetIsRequired  = errors.New("target status is required for update_status")
)

// BulkOrderActionCommand applies one action to a list of orders.
// Execution is sequential with per-item isolation: one failing item never
// rolls back or blocks the others, and partial success is a normal outcome.
type BulkOrderActionCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	action   string
	target   order.Status
	staffID  *kernel.UUID
	actorID  kernel.UUID
	origin   string

	guard guard.ConstructorGuard
}

// NewBulkOrderActionCommand creates a bulk command. target is consulted
// only for update_status; staffID only for the assignment actions.
func NewBulkOrderActionCommand(
	orderIDs []kernel.UUID,
	action string,
	target order.Status,
	staffID *kernel.UUID,
	actorID kernel.UUID,
	origin string,
) (BulkOrderActionCommand, error) {
	command := BulkOrderActionCommand{
		target:  target,
		staffID: staffID,
		origin:  origin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderIDs(orderIDs),
		command.setAction(action),
		command.setActorID(actorID),
	); err != nil {
		return BulkOrderActionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkOrderActionCommandIsNotConstructed if validation fails.
func (c BulkOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrBulkOrderActionCommandIsNotConstructed)
}

// OrderIDs returns the orders the action applies to, in request order.
func (c BulkOrderActionCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Action returns the requested action name.
func (c BulkOrderActionCommand) Action() string {
	return c.action
}

// Target returns the requested status for update_status.
func (c BulkOrderActionCommand) Target() order.Status {
	return c.target
}

// StaffID returns the staff member for the assignment actions, or nil.
func (c BulkOrderActionCommand) StaffID() *kernel.UUID {
	return c.staffID
}

// ActorID returns who requested the bulk action.
func (c BulkOrderActionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Origin returns where the request came from, recorded in the audit trail.
func (c BulkOrderActionCommand) Origin() string {
	return c.origin
}

func (c *BulkOrderActionCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrBulkOrderIDsAreEmpty
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *BulkOrderActionCommand) setAction(action string) error {
	if action == "" {
		return ErrBulkActionIsRequired
	}

	c.action = action
	return nil
}

func (c *BulkOrderActionCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}
