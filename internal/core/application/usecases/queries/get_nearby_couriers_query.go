package queries

import (
	"errors"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/services"
	"domicilios/internal/pkg/guard"
)

var ErrGetNearbyCouriersQueryIsNotConstructed = errors.New(
	"GetNearbyCouriersQuery must be created via NewGetNearbyCouriersQuery constructor",
)

// GetNearbyCouriersQuery finds available couriers around a point, closest
// first. A non-positive radius falls back to the default dispatch radius.
//
// Example:
//
//	query, err := NewGetNearbyCouriersQuery(6.2088, -75.5704, 1.0)
//	if err != nil {
//	    return err
//	}
//	nearby, err := handler.Handle(ctx, query)
type GetNearbyCouriersQuery struct { //nolint:recvcheck //using for validation
	origin        kernel.GeoPoint
	maxDistanceKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbyCouriersQuery creates a query to find couriers near a point.
// The coordinates must be a valid geographic position.
func NewGetNearbyCouriersQuery(lat, lng, maxDistanceKm float64) (GetNearbyCouriersQuery, error) {
	origin, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return GetNearbyCouriersQuery{}, err
	}

	if maxDistanceKm <= 0 {
		maxDistanceKm = services.DefaultMaxDistanceKm
	}

	return GetNearbyCouriersQuery{
		origin:        origin,
		maxDistanceKm: maxDistanceKm,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyCouriersQueryIsNotConstructed)
}

// Origin returns the search center.
func (q GetNearbyCouriersQuery) Origin() kernel.GeoPoint { return q.origin }

// MaxDistanceKm returns the search radius in kilometers.
func (q GetNearbyCouriersQuery) MaxDistanceKm() float64 { return q.maxDistanceKm }
