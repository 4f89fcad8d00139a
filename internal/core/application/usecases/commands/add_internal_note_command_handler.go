package commands

import (
	"context"
	"time"
)

// AddInternalNoteCommandHandler handles appending staff notes to orders.
type AddInternalNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddInternalNoteCommandHandler creates a handler for note appends.
func NewAddInternalNoteCommandHandler(uowFactory OrderUoWFactory) AddInternalNoteCommandHandler {
	return AddInternalNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note command.
func (h *AddInternalNoteCommandHandler) Handle(ctx context.Context, cmd AddInternalNoteCommand) error {
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

	if err = aggregate.AddNote(cmd.AuthorID(), cmd.Text(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
