package queries

import (
	"context"

	"domicilios/internal/core/domain/services"
	"domicilios/internal/core/ports"
)

// GetNearbyCouriersQueryHandler ranks available couriers by distance from a
// point using the domain matching service.
type GetNearbyCouriersQueryHandler struct {
	couriers ports.CourierRepository
	matcher  services.CourierMatcher
}

// NewGetNearbyCouriersQueryHandler creates a handler for proximity searches.
func NewGetNearbyCouriersQueryHandler(couriers ports.CourierRepository) GetNearbyCouriersQueryHandler {
	return GetNearbyCouriersQueryHandler{
		couriers: couriers,
		matcher:  services.NewCourierMatcher(),
	}
}

// Handle executes the search. Results come back ascending by distance with
// stable ties and 2-decimal distances.
func (h GetNearbyCouriersQueryHandler) Handle(
	ctx context.Context, query GetNearbyCouriersQuery,
) ([]services.RankedCourier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	available, err := h.couriers.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	return h.matcher.RankNearby(query.Origin(), available, query.MaxDistanceKm())
}
