package queries

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var ErrGetOrderPaymentQueryIsNotConstructed = errors.New(
	"GetOrderPaymentQuery must be created via NewGetOrderPaymentQuery constructor",
)

// GetOrderPaymentQuery retrieves an order's payment summary: the order's
// current payment state plus its most recent ledger record, if any.
type GetOrderPaymentQuery struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderPaymentQuery creates a query for one order's payment state.
func NewGetOrderPaymentQuery(orderID int) (GetOrderPaymentQuery, error) {
	q := GetOrderPaymentQuery{guard: guard.NewConstructorGuard()}

	if orderID <= 0 {
		return GetOrderPaymentQuery{}, ErrOrderIDIsInvalid
	}
	q.orderID = orderID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPaymentQueryIsNotConstructed)
}

// OrderID returns the order whose payment state is requested.
func (q GetOrderPaymentQuery) OrderID() int { return q.orderID }
