package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetOrderFlagsCommandIsNotConstructed = errors.New(
		"SetOrderFlagsCommand must be created via NewSetOrderFlagsCommand constructor",
	)
	ErrFlagsUpdateIsEmpty = errors.New("flags update must carry at least one field")
)

// SetOrderFlagsCommand applies a partial update of the order's operational
// flags. Each flag is independently optional; only supplied fields change.
type SetOrderFlagsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	update  order.FlagsUpdate

	guard guard.ConstructorGuard
}

// NewSetOrderFlagsCommand creates a flags update command. At least one
// field of the update must be supplied.
func NewSetOrderFlagsCommand(orderID kernel.UUID, update order.FlagsUpdate) (SetOrderFlagsCommand, error) {
	command := SetOrderFlagsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setUpdate(update),
	); err != nil {
		return SetOrderFlagsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetOrderFlagsCommandIsNotConstructed if validation fails.
func (c SetOrderFlagsCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderFlagsCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c SetOrderFlagsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Update returns the partial flags update.
func (c SetOrderFlagsCommand) Update() order.FlagsUpdate {
	return c.update
}

func (c *SetOrderFlagsCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SetOrderFlagsCommand) setUpdate(update order.FlagsUpdate) error {
	if update.IsPriority == nil && update.IsDelayed == nil &&
		update.HasIssue == nil && update.IssueDescription == nil {
		return ErrFlagsUpdateIsEmpty
	}

	c.update = update
	return nil
}
