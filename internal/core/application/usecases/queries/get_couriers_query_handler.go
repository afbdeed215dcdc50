package queries

import (
	"context"

	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/ports"
)

// GetCouriersQueryHandler lists the fleet through the courier repository port.
type GetCouriersQueryHandler struct {
	couriers ports.CourierRepository
}

// NewGetCouriersQueryHandler creates a handler for fleet listings.
func NewGetCouriersQueryHandler(couriers ports.CourierRepository) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{couriers: couriers}
}

// Handle executes the listing.
func (h GetCouriersQueryHandler) Handle(
	ctx context.Context, query GetCouriersQuery,
) ([]*courier.Courier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.OnlyAvailable() {
		return h.couriers.GetAllAvailable(ctx)
	}
	return h.couriers.GetAll(ctx)
}
