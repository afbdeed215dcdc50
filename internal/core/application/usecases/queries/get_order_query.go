// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read through the repository ports so both storage backends serve
// the same read path.
package queries

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderQuery retrieves a single order by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(7)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}
	q.orderID = orderID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() int { return q.orderID }
