package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetTrackingCommandIsNotConstructed = errors.New(
		"SetTrackingCommand must be created via NewSetTrackingCommand constructor",
	)
	ErrTrackingUpdateIsEmpty = errors.New("tracking update must carry at least one field")
)

// SetTrackingCommand applies a partial update to an order's tracking info.
// Only the supplied fields change. When the update sets a tracking number
// on an order that had none, the handler fires the tracking side effects.
type SetTrackingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	update  order.TrackingUpdate

	guard guard.ConstructorGuard
}

// NewSetTrackingCommand creates a tracking update command. At least one
// field of the update must be supplied.
func NewSetTrackingCommand(orderID kernel.UUID, update order.TrackingUpdate) (SetTrackingCommand, error) {
	command := SetTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setUpdate(update),
	); err != nil {
		return SetTrackingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetTrackingCommandIsNotConstructed if validation fails.
func (c SetTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSetTrackingCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c SetTrackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Update returns the partial tracking update.
func (c SetTrackingCommand) Update() order.TrackingUpdate {
	return c.update
}

func (c *SetTrackingCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SetTrackingCommand) setUpdate(update order.TrackingUpdate) error {
	if update.Number == nil && update.URL == nil &&
		update.CourierName == nil && update.EstimatedDelivery == nil {
		return ErrTrackingUpdateIsEmpty
	}

	c.update = update
	return nil
}
