package commands

import (
	"context"
)

// SetTrackingCommandHandler handles partial updates of an order's tracking
// info. Every committed change best-effort-propagates to the commerce
// projection; the customer notification additionally requires the tracking
// number to have been newly set (previously empty).
type SetTrackingCommandHandler struct {
	uowFactory  OrderUoWFactory
	sideEffects *SideEffects
}

// NewSetTrackingCommandHandler creates a handler for tracking updates.
func NewSetTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	sideEffects *SideEffects,
) SetTrackingCommandHandler {
	return SetTrackingCommandHandler{
		uowFactory:  uowFactory,
		sideEffects: sideEffects,
	}
}

// Handle processes the tracking update command.
func (h *SetTrackingCommandHandler) Handle(ctx context.Context, cmd SetTrackingCommand) error {
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

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	numberNewlySet := aggregate.ApplyTrackingUpdate(cmd.Update())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sideEffects.TrackingChanged(aggregate, numberNewlySet)

	return nil
}
