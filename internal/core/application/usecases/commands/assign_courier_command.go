package commands

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var (
	ErrAssignCourierCommandIsNotConstructed = errors.New(
		"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
	)
	ErrCourierIDIsInvalid = errors.New("courier id must be greater than 0")
)

// AssignCourierCommand represents a request to hand a specific order to a
// specific courier.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	courierID int
	orderID   int

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign an order to a courier.
func NewAssignCourierCommand(courierID, orderID int) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setOrderID(orderID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// CourierID returns the courier taking the order.
func (c AssignCourierCommand) CourierID() int { return c.courierID }

// OrderID returns the order being handed off.
func (c AssignCourierCommand) OrderID() int { return c.orderID }

func (c *AssignCourierCommand) setCourierID(courierID int) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}

func (c *AssignCourierCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
