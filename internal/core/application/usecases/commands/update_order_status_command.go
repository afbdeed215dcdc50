package commands

import (
	"errors"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   int
	newStatus order.Status
	courierID *int

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates the order id and that the target status is a known value.
// Whether the transition is allowed from the order's current status is
// decided by the aggregate when the command is handled. courierID is
// optional; when set together with en_camino the courier's contact data is
// copied onto the order for display.
func NewUpdateOrderStatusCommand(
	orderID int, newStatus order.Status, courierID *int,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateOrderStatusCommand) OrderID() int { return c.orderID }

// NewStatus returns the target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// CourierID returns the optional courier to bind for display, or nil.
func (c UpdateOrderStatusCommand) CourierID() *int { return c.courierID }

func (c *UpdateOrderStatusCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
