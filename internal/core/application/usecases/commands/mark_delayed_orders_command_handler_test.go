package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDelayedOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	stale := makePendingOrder(t)
	alreadyDelayed := makePendingOrder(t)
	delayed := true
	alreadyDelayed.SetFlags(order.FlagsUpdate{IsDelayed: &delayed})

	cmd, err := commands.NewMarkDelayedOrdersCommand(48 * time.Hour)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveNotUpdatedSince", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{stale, alreadyDelayed}, nil).Once(),
		repo.On("Update", ctx, stale).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDelayedOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, stale.IsDelayed())
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "Update", 1)
	uow.AssertExpectations(t)
}

func TestMarkDelayedOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewMarkDelayedOrdersCommand(48 * time.Hour)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveNotUpdatedSince", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDelayedOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewMarkDelayedOrdersCommand_InvalidThreshold(t *testing.T) {
	_, err := commands.NewMarkDelayedOrdersCommand(0)

	require.ErrorIs(t, err, commands.ErrDelayThresholdIsInvalid)
}
