package queries

import (
	"context"
	"errors"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/ports"
	"domicilios/internal/pkg/errs"
)

// OrderPaymentResponse pairs an order with its latest ledger record.
// LastRecord is nil when the order was never run through payment processing.
type OrderPaymentResponse struct {
	Order      *order.Order
	LastRecord *payment.Record
}

// GetOrderPaymentQueryHandler reads an order's payment state.
type GetOrderPaymentQueryHandler struct {
	orders   ports.OrderRepository
	payments ports.PaymentRepository
}

// NewGetOrderPaymentQueryHandler creates a handler for order payment lookups.
func NewGetOrderPaymentQueryHandler(
	orders ports.OrderRepository,
	payments ports.PaymentRepository,
) GetOrderPaymentQueryHandler {
	return GetOrderPaymentQueryHandler{orders: orders, payments: payments}
}

// Handle executes the lookup. An unknown order id is NotFound; an order with
// no ledger records returns a response with a nil LastRecord.
func (h GetOrderPaymentQueryHandler) Handle(
	ctx context.Context, query GetOrderPaymentQuery,
) (OrderPaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPaymentResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderPaymentResponse{}, err
	}

	last, err := h.payments.GetLastByOrder(ctx, query.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return OrderPaymentResponse{}, err
	}

	return OrderPaymentResponse{Order: o, LastRecord: last}, nil
}
