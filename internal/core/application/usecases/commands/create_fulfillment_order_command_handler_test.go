package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeIntakeCommand(t *testing.T) commands.CreateFulfillmentOrderCommand {
	t.Helper()

	orderValue, err := kernel.NewMoney(10000)
	require.NoError(t, err)
	productCost, err := kernel.NewMoney(4000)
	require.NoError(t, err)
	shippingCost, err := kernel.NewMoney(500)
	require.NoError(t, err)
	serviceFee, err := kernel.NewMoney(300)
	require.NoError(t, err)

	cmd, err := commands.NewCreateFulfillmentOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Details{StoreName: "Trendy Things", CustomerName: "Asha Verma", PrimarySKU: "SKU-001"},
		order.Pricing{
			OrderValue:     orderValue,
			ProductCost:    productCost,
			ShippingCost:   shippingCost,
			ServiceFee:     serviceFee,
			WalletDeducted: orderValue,
		},
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateFulfillmentOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := makeIntakeCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pending &&
				len(o.History()) == 1 &&
				o.ID().IsEqual(cmd.OrderID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateFulfillmentOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateFulfillmentOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := makeIntakeCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateFulfillmentOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateFulfillmentOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateFulfillmentOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.CreateFulfillmentOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateFulfillmentOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateFulfillmentOrderCommand_InvalidIDs(t *testing.T) {
	var invalid kernel.UUID

	_, err := commands.NewCreateFulfillmentOrderCommand(
		invalid, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Details{}, order.Pricing{}, kernel.NewUUID(),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "UUID must be created")
}
