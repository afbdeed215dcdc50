package queries

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery retrieves the full payment ledger.
type GetPaymentHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for the whole ledger.
func NewGetPaymentHistoryQuery() GetPaymentHistoryQuery {
	return GetPaymentHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}
