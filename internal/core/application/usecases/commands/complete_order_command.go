package commands

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a courier reporting a finished delivery.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	courierID int
	orderID   int

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark a delivery as done.
func NewCompleteOrderCommand(courierID, orderID int) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CourierID returns the courier reporting completion.
func (c CompleteOrderCommand) CourierID() int { return c.courierID }

// OrderID returns the delivered order.
func (c CompleteOrderCommand) OrderID() int { return c.orderID }

func (c *CompleteOrderCommand) setCourierID(courierID int) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
