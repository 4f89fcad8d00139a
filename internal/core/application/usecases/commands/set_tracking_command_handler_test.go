package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetTrackingCommandHandler_Handle_NewNumberFiresSideEffects(t *testing.T) {
	ctx := t.Context()
	aggregate := makePendingOrder(t)
	number := "AWB-12345"
	cmd, err := commands.NewSetTrackingCommand(aggregate.ID(), order.TrackingUpdate{Number: &number})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	side := newCollaborators()
	side.projector.On("ProjectTracking", mock.Anything, aggregate.CommerceOrderID(),
		mock.MatchedBy(func(p ports.TrackingProjection) bool {
			return p.TrackingNumber != nil && *p.TrackingNumber == number
		})).Return(nil).Once()
	side.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Type == "ORDER_TRACKING" && n.Metadata["trackingNumber"] == number
	})).Return(nil).Once()

	h := commands.NewSetTrackingCommandHandler(factory, side.effects)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, number, aggregate.Tracking().Number())

	side.effects.Wait()
	side.projector.AssertExpectations(t)
	side.notifier.AssertExpectations(t)
}

func TestSetTrackingCommandHandler_Handle_ReplacedNumberProjectsWithoutNotification(t *testing.T) {
	ctx := t.Context()
	aggregate := makePendingOrder(t)
	existing := "AWB-1"
	aggregate.ApplyTrackingUpdate(order.TrackingUpdate{Number: &existing})

	replacement := "AWB-2"
	cmd, err := commands.NewSetTrackingCommand(aggregate.ID(), order.TrackingUpdate{Number: &replacement})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	side := newCollaborators()
	side.projector.On("ProjectTracking", mock.Anything, aggregate.CommerceOrderID(),
		mock.MatchedBy(func(p ports.TrackingProjection) bool {
			return p.TrackingNumber != nil && *p.TrackingNumber == replacement
		})).Return(nil).Once()

	h := commands.NewSetTrackingCommandHandler(factory, side.effects)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, replacement, aggregate.Tracking().Number())

	side.effects.Wait()
	side.projector.AssertExpectations(t)
	side.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNewSetTrackingCommand_EmptyUpdate(t *testing.T) {
	aggregate := makePendingOrder(t)

	_, err := commands.NewSetTrackingCommand(aggregate.ID(), order.TrackingUpdate{})

	require.ErrorIs(t, err, commands.ErrTrackingUpdateIsEmpty)
}
