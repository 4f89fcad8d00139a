package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetRTOAddressCommandIsNotConstructed = errors.New(
		"SetRTOAddressCommand must be created via NewSetRTOAddressCommand constructor",
	)
)

// SetRTOAddressCommand overwrites the order's return-to-origin address in
// full. Unsupplied subfields become empty; an empty country defaults to
// the domestic default inside the address constructor.
type SetRTOAddressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address order.RTOAddress

	guard guard.ConstructorGuard
}

// NewSetRTOAddressCommand creates an RTO address overwrite command.
func NewSetRTOAddressCommand(orderID kernel.UUID, address order.RTOAddress) (SetRTOAddressCommand, error) {
	command := SetRTOAddressCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return SetRTOAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRTOAddressCommandIsNotConstructed if validation fails.
func (c SetRTOAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetRTOAddressCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c SetRTOAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the replacement RTO address.
func (c SetRTOAddressCommand) Address() order.RTOAddress {
	return c.address
}

func (c *SetRTOAddressCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
