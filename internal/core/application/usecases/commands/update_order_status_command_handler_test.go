package commands_test

import (
	"testing"
	"time"

	"domicilios/internal/core/application/usecases/commands"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusPreparing, nil)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusPreparing, updated.Status())
	require.Len(t, updated.StatusHistory(), 2)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SameStatusStillAppendsHistory(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusPending, nil)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)
	before := testOrder.UpdatedAt()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusPending, updated.Status())
	require.Len(t, updated.StatusHistory(), 2)
	require.True(t, !updated.UpdatedAt().Before(before))
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusPreparing, nil)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)
	require.NoError(t, testOrder.ChangeStatus(order.StatusCancelled, time.Now()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, handleErr := handler.Handle(ctx, cmd)

	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrInvalidState)
}

func TestUpdateOrderStatusCommandHandler_Handle_EnRouteDerivesPlaceholderContact(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusEnRoute, nil)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// id 7 mod 4 = 3 picks the last placeholder name.
	require.Equal(t, "Ana", updated.DeliveryPerson())
	require.Equal(t, "+57 300 1000007", updated.CourierPhone())
}

func TestUpdateOrderStatusCommandHandler_Handle_EnRouteBindsCourierContact(t *testing.T) {
	ctx := t.Context()
	courierID := 2
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusEnRoute, &courierID)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)
	boundCourier := testCourier(t, 2)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, 2).Return(boundCourier, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "Juan Valdez", updated.DeliveryPerson())
	require.Equal(t, "3009876543", updated.CourierPhone())
	// The cosmetic binding must not flip the courier's availability.
	require.True(t, boundCourier.Available())
}

func TestUpdateOrderStatusCommandHandler_Handle_EnRouteUnknownCourierIsNotFound(t *testing.T) {
	ctx := t.Context()
	courierID := 99
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusEnRoute, &courierID)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, 99).Return(nil, errs.NewObjectNotFoundError("courier", 99)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, handleErr := handler.Handle(ctx, cmd)

	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
	// Nothing is persisted when the named courier does not exist.
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(99, order.StatusPreparing, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 99).Return(nil, errs.NewObjectNotFoundError("order", 99)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, handleErr := handler.Handle(ctx, cmd)

	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
}
