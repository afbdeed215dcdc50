package queries

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery retrieves the courier fleet, optionally restricted to
// couriers free to take an order.
type GetCouriersQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a query to list couriers.
func NewGetCouriersQuery(onlyAvailable bool) GetCouriersQuery {
	return GetCouriersQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// OnlyAvailable reports whether busy couriers are filtered out.
func (q GetCouriersQuery) OnlyAvailable() bool { return q.onlyAvailable }
