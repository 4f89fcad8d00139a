package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignStaffCommandIsNotConstructed = errors.New(
		"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
	)
)

// AssignStaffCommand assigns or clears the staff member for one role on an
// order. A nil staff reference clears the assignment. Assignment is not
// status-gated: it stays valid on terminal orders.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	role    order.StaffRole
	staffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates an assignment command. staffID may be nil
// to clear the role.
func NewAssignStaffCommand(
	orderID kernel.UUID,
	role order.StaffRole,
	staffID *kernel.UUID,
) (AssignStaffCommand, error) {
	command := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRole(role),
		command.setStaffID(staffID),
	); err != nil {
		return AssignStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignStaffCommandIsNotConstructed if validation fails.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c AssignStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the staff role being assigned.
func (c AssignStaffCommand) Role() order.StaffRole {
	return c.role
}

// StaffID returns the staff member to assign, or nil to clear.
func (c AssignStaffCommand) StaffID() *kernel.UUID {
	return c.staffID
}

func (c *AssignStaffCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignStaffCommand) setRole(role order.StaffRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *AssignStaffCommand) setStaffID(staffID *kernel.UUID) error {
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	c.staffID = staffID
	return nil
}
