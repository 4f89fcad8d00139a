package commands

import (
	"context"
)

// SetOrderFlagsCommandHandler handles partial updates of an order's
// operational flags.
type SetOrderFlagsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderFlagsCommandHandler creates a handler for flag updates.
func NewSetOrderFlagsCommandHandler(uowFactory OrderUoWFactory) SetOrderFlagsCommandHandler {
	return SetOrderFlagsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flags command.
func (h *SetOrderFlagsCommandHandler) Handle(ctx context.Context, cmd SetOrderFlagsCommand) error {
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

	aggregate.SetFlags(cmd.Update())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
