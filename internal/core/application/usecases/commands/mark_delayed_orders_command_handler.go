package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// MarkDelayedOrdersCommandHandler flags stale active orders as delayed.
// Already-delayed orders are skipped so the sweep stays idempotent and
// does not churn versions.
type MarkDelayedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDelayedOrdersCommandHandler creates a handler for the delayed sweep.
func NewMarkDelayedOrdersCommandHandler(uowFactory OrderUoWFactory) MarkDelayedOrdersCommandHandler {
	return MarkDelayedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. All flag writes happen in a single
// transaction; the sweep re-runs soon anyway, so a failure just rolls
// back and waits for the next tick.
func (h *MarkDelayedOrdersCommandHandler) Handle(ctx context.Context, cmd MarkDelayedOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.Threshold())
	stale, err := repo.GetActiveNotUpdatedSince(ctx, cutoff)
	if err != nil {
		return err
	}

	delayed := true
	for _, aggregate := range stale {
		if aggregate.IsDelayed() {
			continue
		}

		aggregate.SetFlags(order.FlagsUpdate{IsDelayed: &delayed})

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
