package commands

import (
	"context"
)

// SetRTOAddressCommandHandler handles return-to-origin address overwrites.
type SetRTOAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetRTOAddressCommandHandler creates a handler for RTO address updates.
func NewSetRTOAddressCommandHandler(uowFactory OrderUoWFactory) SetRTOAddressCommandHandler {
	return SetRTOAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the RTO address command.
func (h *SetRTOAddressCommandHandler) Handle(ctx context.Context, cmd SetRTOAddressCommand) error {
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

	aggregate.SetRTOAddress(cmd.Address())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
