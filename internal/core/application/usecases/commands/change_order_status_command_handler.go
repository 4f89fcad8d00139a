package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler executes status transitions.
//
// The write path is: load the aggregate, apply the transition through the
// policy, persist with a compare-and-swap on the loaded version, commit.
// Only after a successful commit are the best-effort side effects fired;
// a rejected transition or a lost concurrency race fires nothing.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	sideEffects *SideEffects
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sideEffects *SideEffects,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		sideEffects: sideEffects,
	}
}

// Handle processes the status change command and returns the updated
// aggregate for the caller's response.
//
// On a policy rejection the error unwraps to order.ErrInvalidTransition
// and carries the valid target set; on a lost write race it unwraps to
// errs.ErrConcurrentModification.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()

	if err = aggregate.ChangeStatus(cmd.Target(), cmd.ActorID(), cmd.Note(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.sideEffects.OrderStatusChanged(aggregate, previous, cmd.ActorID(), cmd.Origin())

	return aggregate, nil
}
