package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bulkFixture wires a factory that hands out a fresh MockOrderUoW per
// item, mirroring the per-item transaction isolation of the handler.
type bulkFixture struct {
	repo    *MockOrderRepository
	factory *MockOrderUoWFactory
	side    *collaborators
}

func newBulkFixture(items int) *bulkFixture {
	repo := new(MockOrderRepository)
	factory := new(MockOrderUoWFactory)

	for range items {
		uow := new(MockOrderUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Commit", mock.Anything).Return(nil).Maybe()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		factory.On("Create").Return(uow).Once()
	}

	return &bulkFixture{
		repo:    repo,
		factory: factory,
		side:    newCollaborators(),
	}
}

func TestBulkOrderActionCommandHandler_Handle_UpdateStatusPartialSuccess(t *testing.T) {
	ctx := t.Context()

	transitions := makePendingOrder(t)
	terminal := makeOrderInStatus(t, order.Delivered)
	missingID := kernel.NewUUID()

	fixture := newBulkFixture(3)
	fixture.repo.On("Get", mock.Anything, transitions.ID()).Return(transitions, nil).Once()
	fixture.repo.On("Get", mock.Anything, terminal.ID()).Return(terminal, nil).Once()
	fixture.repo.On("Get", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("order", missingID.String())).Once()
	fixture.repo.On("Update", mock.Anything, transitions).Return(nil).Once()

	fixture.side.projector.On("ProjectStatus", mock.Anything, transitions.CommerceOrderID(), "sourcing").Return(nil).Once()
	fixture.side.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()
	fixture.side.audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewBulkOrderActionCommand(
		[]kernel.UUID{transitions.ID(), terminal.ID(), missingID},
		commands.BulkActionUpdateStatus,
		order.Sourcing, nil, kernel.NewUUID(), "",
	)
	require.NoError(t, err)

	h := commands.NewBulkOrderActionCommandHandler(fixture.factory, fixture.side.effects)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err, "partial failure is a normal outcome, not an error")
	assert.Equal(t, []kernel.UUID{transitions.ID()}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.True(t, result.Failed[0].OrderID.IsEqual(terminal.ID()))
	assert.Contains(t, result.Failed[0].Reason, "invalid status transition")
	assert.True(t, result.Failed[1].OrderID.IsEqual(missingID))
	assert.Contains(t, result.Failed[1].Reason, "object not found")

	assert.Equal(t, order.Sourcing, transitions.Status())
	assert.Equal(t, order.Delivered, terminal.Status(), "rejected item must stay untouched")

	fixture.side.effects.Wait()
	fixture.repo.AssertExpectations(t)
	fixture.side.projector.AssertExpectations(t)
}

func TestBulkOrderActionCommandHandler_Handle_UnknownActionFailsEveryItem(t *testing.T) {
	ctx := t.Context()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	repo := new(MockOrderRepository)
	factory := new(MockOrderUoWFactory)
	side := newCollaborators()

	cmd, err := commands.NewBulkOrderActionCommand(
		[]kernel.UUID{first, second},
		"archive", order.Unknown, nil, kernel.NewUUID(), "",
	)
	require.NoError(t, err)

	h := commands.NewBulkOrderActionCommandHandler(factory, side.effects)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Succeeded)
	require.Len(t, result.Failed, 2)
	for _, failure := range result.Failed {
		assert.Contains(t, failure.Reason, "unknown bulk action")
	}
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestBulkOrderActionCommandHandler_Handle_AssignPicker(t *testing.T) {
	ctx := t.Context()
	aggregate := makePendingOrder(t)
	staff := kernel.NewUUID()

	fixture := newBulkFixture(1)
	fixture.repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	fixture.repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	cmd, err := commands.NewBulkOrderActionCommand(
		[]kernel.UUID{aggregate.ID()},
		commands.BulkActionAssignPicker,
		order.Unknown, &staff, kernel.NewUUID(), "",
	)
	require.NoError(t, err)

	h := commands.NewBulkOrderActionCommandHandler(fixture.factory, fixture.side.effects)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 1)
	assert.Empty(t, result.Failed)
	require.NotNil(t, aggregate.Picker())
	assert.True(t, aggregate.Picker().IsEqual(staff))
}

func TestBulkOrderActionCommandHandler_Handle_AssignWithoutStaffIDFails(t *testing.T) {
	ctx := t.Context()
	aggregate := makePendingOrder(t)

	fixture := newBulkFixture(1)
	fixture.repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	cmd, err := commands.NewBulkOrderActionCommand(
		[]kernel.UUID{aggregate.ID()},
		commands.BulkActionAssignPacker,
		order.Unknown, nil, kernel.NewUUID(), "",
	)
	require.NoError(t, err)

	h := commands.NewBulkOrderActionCommandHandler(fixture.factory, fixture.side.effects)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed[0].Reason, "staff id is required")
	assert.Nil(t, aggregate.Packer())
}

func TestBulkOrderActionCommandHandler_Handle_MarkAndUnmarkPriority(t *testing.T) {
	ctx := t.Context()
	aggregate := makePendingOrder(t)

	fixture := newBulkFixture(2)
	fixture.repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Twice()
	fixture.repo.On("Update", mock.Anything, aggregate).Return(nil).Twice()

	actor := kernel.NewUUID()

	mark, err := commands.NewBulkOrderActionCommand(
		[]kernel.UUID{aggregate.ID()}, commands.BulkActionMarkPriority,
		order.Unknown, nil, actor, "",
	)
	require.NoError(t, err)

	h := commands.NewBulkOrderActionCommandHandler(fixture.factory, fixture.side.effects)
	result, err := h.Handle(ctx, mark)
	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 1)
	assert.True(t, aggregate.IsPriority())

	unmark, err := commands.NewBulkOrderActionCommand(
		[]kernel.UUID{aggregate.ID()}, commands.BulkActionUnmarkPriority,
		order.Unknown, nil, actor, "",
	)
	require.NoError(t, err)

	result, err = h.Handle(ctx, unmark)
	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 1)
	assert.False(t, aggregate.IsPriority())
}

func TestBulkOrderActionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	side := newCollaborators()

	h := commands.NewBulkOrderActionCommandHandler(factory, side.effects)
	_, err := h.Handle(ctx, commands.BulkOrderActionCommand{})

	require.ErrorIs(t, err, commands.ErrBulkOrderActionCommandIsNotConstructed)
}
