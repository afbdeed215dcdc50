package commands

import (
	"context"
	"time"

	"domicilios/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler closes out a delivery.
// The order moves to entregado and the courier is released: marked available
// again, unbound from the order, and credited one delivery. Both aggregates
// are persisted within a single unit of work.
type CompleteOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion.
func NewCompleteOrderCommandHandler(uowFactory AssignmentUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion and returns the delivered order.
// Fails with NotFound when either entity is absent, and with InvalidState
// when the order is held by a different courier than the one reporting.
func (h CompleteOrderCommandHandler) Handle(
	ctx context.Context, cmd CompleteOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = o.Complete(c.ID(), time.Now()); err != nil {
		return nil, err
	}

	if err = c.Release(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
