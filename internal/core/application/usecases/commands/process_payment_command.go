package commands

import (
	"errors"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// CardInput carries raw card fields as received from the customer.
// Validated into payment.CardDetails by the command constructor.
type CardInput struct {
	Number string
	Holder string
	CVV    string
}

// ProcessPaymentCommand represents a request to collect payment for an order.
// Card details are required for tarjeta and validated up front, before any
// state is touched.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID int
	method  order.PaymentMethod
	card    *payment.CardDetails

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to process an order payment.
// For tarjeta the card fields must pass validation (13 to 19 digits after
// stripping spaces and dashes, holder of at least 3 characters, exactly
// 3-digit CVV). For efectivo any supplied card is ignored.
func NewProcessPaymentCommand(
	orderID int, method order.PaymentMethod, card *CardInput,
) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	if method == order.MethodCard {
		if card == nil {
			return ProcessPaymentCommand{}, errs.NewValueIsRequiredError("card")
		}

		details, err := payment.NewCardDetails(card.Number, card.Holder, card.CVV)
		if err != nil {
			return ProcessPaymentCommand{}, err
		}
		cmd.card = &details
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c ProcessPaymentCommand) OrderID() int { return c.orderID }

// Method returns the payment method.
func (c ProcessPaymentCommand) Method() order.PaymentMethod { return c.method }

// Card returns the validated card details, or nil for cash payments.
func (c ProcessPaymentCommand) Card() *payment.CardDetails { return c.card }

func (c *ProcessPaymentCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
