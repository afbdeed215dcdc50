package queries

import (
	"context"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/ports"
)

// GetOrderQueryHandler retrieves one order through the order repository port.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. Returns an ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, query.OrderID())
}
