package queries

import (
	"context"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/ports"
)

// GetOrdersQueryHandler lists orders with optional courier/business filters.
type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle executes the listing. Filters combine with AND; an order with no
// courier never matches a courier filter.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context, query GetOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if query.CourierID() != nil {
			if o.CourierID() == nil || *o.CourierID() != *query.CourierID() {
				continue
			}
		}
		if query.BusinessID() != nil && o.Business().ID() != *query.BusinessID() {
			continue
		}
		matched = append(matched, o)
	}

	return matched, nil
}
