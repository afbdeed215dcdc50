package queries

import (
	"context"
	"sort"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/ports"
)

// GetOrdersByPhoneQueryHandler looks up a customer's order history.
type GetOrdersByPhoneQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersByPhoneQueryHandler creates a handler for phone lookups.
func NewGetOrdersByPhoneQueryHandler(orders ports.OrderRepository) GetOrdersByPhoneQueryHandler {
	return GetOrdersByPhoneQueryHandler{orders: orders}
}

// Handle executes the lookup. Matches on the normalized phone and returns
// newest orders first.
func (h GetOrdersByPhoneQueryHandler) Handle(
	ctx context.Context, query GetOrdersByPhoneQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := order.NormalizePhone(query.Phone())

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*order.Order, 0)
	for _, o := range all {
		if order.NormalizePhone(o.Customer().Phone()) == key {
			matched = append(matched, o)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	return matched, nil
}
