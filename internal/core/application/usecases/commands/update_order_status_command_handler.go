package commands

import (
	"context"
	"time"

	"domicilios/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles plain status transitions driven by
// the business side of the marketplace. This is the legacy lifecycle path:
// it moves the order along pendiente → preparando → en_camino → entregado
// (or cancelado) without touching courier availability. Fleet state is
// managed by the assignment and completion handlers.
type UpdateOrderStatusCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory AssignmentUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated order.
// A history entry is appended and updatedAt is touched on every call, even
// when the status value did not change. When the target is en_camino and a
// courier id is supplied, the courier's contact data is copied onto the
// order; when no courier is known the legacy placeholder contact is derived
// from the order id.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.NewStatus(), time.Now()); err != nil {
		return nil, err
	}

	if cmd.NewStatus() == order.StatusEnRoute {
		if cmd.CourierID() != nil {
			c, err := uow.CourierRepository().Get(ctx, *cmd.CourierID())
			if err != nil {
				return nil, err
			}
			o.BindCourierContact(c.ID(), c.Name(), c.Phone())
		} else {
			o.EnsureDeliveryPerson()
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
