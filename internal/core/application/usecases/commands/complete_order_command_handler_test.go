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

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(2, 7)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)
	assignedCourier := testCourier(t, 2)
	require.NoError(t, assignedCourier.Take(7))
	require.NoError(t, testOrder.Assign(2, assignedCourier.Name(), assignedCourier.Phone(), time.Now()))

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, 2).Return(assignedCourier, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	delivered, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusDelivered, delivered.Status())

	// Assign followed by Complete restores a free courier with one more
	// delivery on the books.
	require.True(t, assignedCourier.Available())
	require.Nil(t, assignedCourier.CurrentOrderID())
	require.Equal(t, 1, assignedCourier.TotalDeliveries())

	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(5, 7)
	require.NoError(t, err)

	testOrder := testPendingOrder(t, 7)
	assignedCourier := testCourier(t, 2)
	require.NoError(t, assignedCourier.Take(7))
	require.NoError(t, testOrder.Assign(2, assignedCourier.Name(), assignedCourier.Phone(), time.Now()))

	otherCourier := testCourier(t, 5)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, 7).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, 5).Return(otherCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	_, handleErr := handler.Handle(ctx, cmd)

	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrInvalidState)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(2, 99)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, 99).Return(nil, errs.NewObjectNotFoundError("order", 99)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	_, handleErr := handler.Handle(ctx, cmd)

	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
}
