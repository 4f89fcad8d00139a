package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// CreateFulfillmentOrderCommandHandler handles the intake of paid orders
// into fulfillment. The created order starts in pending status with its
// seed history entry and walletDeductedAt set to the intake time.
type CreateFulfillmentOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateFulfillmentOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateFulfillmentOrderCommandHandler(uowFactory OrderUoWFactory) CreateFulfillmentOrderCommandHandler {
	return CreateFulfillmentOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateFulfillmentOrderCommandHandler) Handle(ctx context.Context, cmd CreateFulfillmentOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CommerceOrderID(), cmd.UserID(), cmd.StoreID(),
		cmd.Details(), cmd.Pricing(), cmd.ActorID(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
