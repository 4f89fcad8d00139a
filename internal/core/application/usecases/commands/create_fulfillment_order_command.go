package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateFulfillmentOrderCommandIsNotConstructed = errors.New(
		"CreateFulfillmentOrderCommand must be created via NewCreateFulfillmentOrderCommand constructor",
	)
)

// CreateFulfillmentOrderCommand represents the intake of a freshly paid
// commerce order into fulfillment. It is issued exactly once per
// wallet-funded purchase; the wallet deduction itself happens upstream.
//
// Example:
//
//	cmd, err := NewCreateFulfillmentOrderCommand(
//	    kernel.NewUUID(), commerceOrderID, userID, storeID,
//	    details, pricing, actorID,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewCreateFulfillmentOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create fulfillment order: %w", err)
//	}
type CreateFulfillmentOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	commerceOrderID kernel.UUID
	userID          kernel.UUID
	storeID         kernel.UUID
	details         order.Details
	pricing         order.Pricing
	actorID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentOrderCommand creates a command to take a paid order
// into fulfillment. All identifier references must be valid.
func NewCreateFulfillmentOrderCommand(
	orderID, commerceOrderID, userID, storeID kernel.UUID,
	details order.Details,
	pricing order.Pricing,
	actorID kernel.UUID,
) (CreateFulfillmentOrderCommand, error) {
	command := CreateFulfillmentOrderCommand{
		details: details,
		pricing: pricing,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCommerceOrderID(commerceOrderID),
		command.setUserID(userID),
		command.setStoreID(storeID),
		command.setActorID(actorID),
	); err != nil {
		return CreateFulfillmentOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateFulfillmentOrderCommandIsNotConstructed if validation fails.
func (c CreateFulfillmentOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the fulfillment order will be created with.
func (c CreateFulfillmentOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CommerceOrderID returns the reference to the originating commerce order.
func (c CreateFulfillmentOrderCommand) CommerceOrderID() kernel.UUID {
	return c.commerceOrderID
}

// UserID returns the owning user reference.
func (c CreateFulfillmentOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// StoreID returns the owning store reference.
func (c CreateFulfillmentOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Details returns the denormalized display fields captured at intake.
func (c CreateFulfillmentOrderCommand) Details() order.Details {
	return c.details
}

// Pricing returns the monetary fields captured at intake.
func (c CreateFulfillmentOrderCommand) Pricing() order.Pricing {
	return c.pricing
}

// ActorID returns who initiated the intake.
func (c CreateFulfillmentOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateFulfillmentOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateFulfillmentOrderCommand) setCommerceOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.commerceOrderID = id
	return nil
}

func (c *CreateFulfillmentOrderCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *CreateFulfillmentOrderCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.storeID = id
	return nil
}

func (c *CreateFulfillmentOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}
