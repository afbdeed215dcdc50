package queries_test

import (
	"testing"
	"time"

	"domicilios/internal/core/application/usecases/queries"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetOrderPaymentQueryHandler_Handle_WithRecord(t *testing.T) {
	ctx := t.Context()
	o := orderFixture(t, 7, "3001112233", time.Now())

	record, err := payment.NewRecord(
		1, 7, 5000, 0, order.MethodCard, order.PaymentPaid, time.Now(),
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	payments := new(MockPaymentRepository)
	orders.On("Get", ctx, 7).Return(o, nil).Once()
	payments.On("GetLastByOrder", ctx, 7).Return(record, nil).Once()

	query, err := queries.NewGetOrderPaymentQuery(7)
	require.NoError(t, err)

	handler := queries.NewGetOrderPaymentQueryHandler(orders, payments)
	got, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Equal(t, 7, got.Order.ID())
	require.NotNil(t, got.LastRecord)
	require.Equal(t, order.PaymentPaid, got.LastRecord.Status())
}

func TestGetOrderPaymentQueryHandler_Handle_NoRecordsIsNotAnError(t *testing.T) {
	ctx := t.Context()
	o := orderFixture(t, 7, "3001112233", time.Now())

	orders := new(MockOrderRepository)
	payments := new(MockPaymentRepository)
	orders.On("Get", ctx, 7).Return(o, nil).Once()
	payments.On("GetLastByOrder", ctx, 7).
		Return(nil, errs.NewObjectNotFoundError("payment", 7)).Once()

	query, err := queries.NewGetOrderPaymentQuery(7)
	require.NoError(t, err)

	handler := queries.NewGetOrderPaymentQueryHandler(orders, payments)
	got, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Nil(t, got.LastRecord)
}

func TestGetOrderPaymentQueryHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orders := new(MockOrderRepository)
	payments := new(MockPaymentRepository)
	orders.On("Get", ctx, 99).Return(nil, errs.NewObjectNotFoundError("order", 99)).Once()

	query, err := queries.NewGetOrderPaymentQuery(99)
	require.NoError(t, err)

	handler := queries.NewGetOrderPaymentQueryHandler(orders, payments)
	_, handleErr := handler.Handle(ctx, query)

	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
}

func TestGetPaymentHistoryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	r1, err := payment.NewRecord(1, 7, 5000, 0, order.MethodCash, order.PaymentPending, time.Now())
	require.NoError(t, err)
	r2, err := payment.NewRecord(2, 8, 9000, 500, order.MethodCard, order.PaymentPaid, time.Now())
	require.NoError(t, err)

	payments := new(MockPaymentRepository)
	payments.On("GetAll", ctx).Return([]*payment.Record{r1, r2}, nil).Once()

	handler := queries.NewGetPaymentHistoryQueryHandler(payments)
	got, err := handler.Handle(ctx, queries.NewGetPaymentHistoryQuery())

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID())
}
