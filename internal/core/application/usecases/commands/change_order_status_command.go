package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status. The transition is validated against the status policy when the
// handler applies it to the aggregate, not here.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Shipped, actorID, "handed to courier", "10.0.0.5")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, sideEffects)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // surface the valid target set to the caller
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actorID kernel.UUID
	note    string
	origin  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command. The target
// must parse to a known status; whether it is reachable from the order's
// current status is decided by the aggregate.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID kernel.UUID,
	note string,
	origin string,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		note:   note,
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActorID(actorID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns who requested the transition.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional free-text note attached to the history entry.
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

// Origin returns where the request came from, recorded in the audit trail.
func (c ChangeOrderStatusCommand) Origin() string {
	return c.origin
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}
