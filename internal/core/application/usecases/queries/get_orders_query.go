package queries

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally narrowed by courier and/or
// business. Both filters combine with AND when set.
type GetOrdersQuery struct {
	courierID  *int
	businessID *int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. Nil filters match
// everything.
func NewGetOrdersQuery(courierID, businessID *int) GetOrdersQuery {
	return GetOrdersQuery{
		courierID:  courierID,
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CourierID returns the courier filter, or nil.
func (q GetOrdersQuery) CourierID() *int { return q.courierID }

// BusinessID returns the business filter, or nil.
func (q GetOrdersQuery) BusinessID() *int { return q.businessID }
