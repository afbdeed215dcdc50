package queries

import (
	"context"

	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/ports"
)

// GetPaymentHistoryQueryHandler reads the append-only payment ledger.
type GetPaymentHistoryQueryHandler struct {
	payments ports.PaymentRepository
}

// NewGetPaymentHistoryQueryHandler creates a handler for ledger reads.
func NewGetPaymentHistoryQueryHandler(payments ports.PaymentRepository) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{payments: payments}
}

// Handle returns every ledger record, oldest first.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context, query GetPaymentHistoryQuery,
) ([]*payment.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.payments.GetAll(ctx)
}
