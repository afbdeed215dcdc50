package commands

import (
	"context"
	"time"

	"domicilios/internal/core/domain/model/order"
)

// AssignCourierCommandHandler hands an order to a courier.
// The order moves to en_camino and records the courier's contact data; the
// courier becomes unavailable and bound to the order. Both aggregates are
// persisted within a single unit of work so fleet state and order state
// never diverge.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd, _ := NewAssignCourierCommand(courierID, orderID)
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignCourierCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
// Requires an AssignmentUoWFactory for coordinating updates across both
// repositories.
func NewAssignCourierCommandHandler(uowFactory AssignmentUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment and returns the updated order.
// Fails with NotFound when either entity is absent, and with InvalidState
// when the courier is busy or the order is past the assignable statuses
// (pendiente, preparando).
func (h AssignCourierCommandHandler) Handle(
	ctx context.Context, cmd AssignCourierCommand,
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

	if err = c.Take(o.ID()); err != nil {
		return nil, err
	}

	if err = o.Assign(c.ID(), c.Name(), c.Phone(), time.Now()); err != nil {
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
