package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// BulkOrderFailure describes one order the bulk action could not be
// applied to, with a human-readable reason.
type BulkOrderFailure struct {
	OrderID kernel.UUID
	Reason  string
}

// BulkOrderActionResult is the per-item outcome of a bulk action.
// Succeeded and Failed together cover every requested order exactly once.
type BulkOrderActionResult struct {
	Succeeded []kernel.UUID
	Failed    []BulkOrderFailure
}

// BulkOrderActionCommandHandler applies one action to many orders with
// per-item isolation: every item runs in its own transaction, so a policy
// rejection, a missing order, or a lost write race on one item leaves the
// others untouched.
type BulkOrderActionCommandHandler struct {
	uowFactory  OrderUoWFactory
	sideEffects *SideEffects
}

// NewBulkOrderActionCommandHandler creates a handler for bulk actions.
func NewBulkOrderActionCommandHandler(
	uowFactory OrderUoWFactory,
	sideEffects *SideEffects,
) BulkOrderActionCommandHandler {
	return BulkOrderActionCommandHandler{
		uowFactory:  uowFactory,
		sideEffects: sideEffects,
	}
}

// Handle processes the bulk command sequentially. An unknown action name
// fails every item; partial success is a normal outcome and is never an
// error at the command level.
func (h *BulkOrderActionCommandHandler) Handle(ctx context.Context, cmd BulkOrderActionCommand) (BulkOrderActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkOrderActionResult{}, err
	}

	result := BulkOrderActionResult{}

	if !isKnownBulkAction(cmd.Action()) {
		for _, id := range cmd.OrderIDs() {
			result.Failed = append(result.Failed, BulkOrderFailure{
				OrderID: id,
				Reason:  fmt.Sprintf("%s: %s", ErrUnknownBulkAction, cmd.Action()),
			})
		}
		return result, nil
	}

	for _, id := range cmd.OrderIDs() {
		if err := h.applyToOrder(ctx, cmd, id); err != nil {
			result.Failed = append(result.Failed, BulkOrderFailure{
				OrderID: id,
				Reason:  err.Error(),
			})
			continue
		}

		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}

// applyToOrder runs the action against a single order in its own
// transaction.
func (h *BulkOrderActionCommandHandler) applyToOrder(ctx context.Context, cmd BulkOrderActionCommand, id kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	statusChanged := false

	switch cmd.Action() {
	case BulkActionUpdateStatus:
		if err = cmd.Target().Validate(); err != nil {
			return ErrBulkTargetIsRequired
		}
		if err = aggregate.ChangeStatus(cmd.Target(), cmd.ActorID(), "", time.Now().UTC()); err != nil {
			return err
		}
		statusChanged = true

	case BulkActionAssignPicker:
		if cmd.StaffID() == nil {
			return ErrBulkStaffIDIsRequired
		}
		if err = aggregate.SetAssignment(order.RolePicker, cmd.StaffID()); err != nil {
			return err
		}

	case BulkActionAssignPacker:
		if cmd.StaffID() == nil {
			return ErrBulkStaffIDIsRequired
		}
		if err = aggregate.SetAssignment(order.RolePacker, cmd.StaffID()); err != nil {
			return err
		}

	case BulkActionMarkPriority:
		priority := true
		aggregate.SetFlags(order.FlagsUpdate{IsPriority: &priority})

	case BulkActionUnmarkPriority:
		priority := false
		aggregate.SetFlags(order.FlagsUpdate{IsPriority: &priority})
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if statusChanged {
		h.sideEffects.OrderStatusChanged(aggregate, previous, cmd.ActorID(), cmd.Origin())
	}

	return nil
}

func isKnownBulkAction(action string) bool {
	switch action {
	case BulkActionUpdateStatus, BulkActionAssignPicker, BulkActionAssignPacker,
		BulkActionMarkPriority, BulkActionUnmarkPriority:
		return true
	default:
		return false
	}
}
