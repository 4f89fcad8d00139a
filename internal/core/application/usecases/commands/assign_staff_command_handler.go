package commands

import (
	"context"
)

// AssignStaffCommandHandler handles staff assignment changes on orders.
type AssignStaffCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignStaffCommandHandler creates a handler for staff assignment.
func NewAssignStaffCommandHandler(uowFactory OrderUoWFactory) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. The write uses the same
// compare-and-swap as status changes, so a concurrent writer loses cleanly.
func (h *AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
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

	if err = aggregate.SetAssignment(cmd.Role(), cmd.StaffID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
