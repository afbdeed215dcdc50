package order

import (
	"fmt"

	"domicilios/internal/pkg/errs"
)

// PaymentStatus tracks whether an order has been paid. It moves independently
// of the delivery Status: a cash order can be entregado while still pendiente
// for payment.
type PaymentStatus string

const (
	// PaymentPending means payment has not been captured (cash on delivery included).
	PaymentPending PaymentStatus = "pendiente"
	// PaymentPaid means payment was captured.
	PaymentPaid PaymentStatus = "pagado"
)

// Validate checks that the payment status is one of the known values.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment_status",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
	return nil
}

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod string

const (
	// MethodCash is collected by the courier on delivery.
	MethodCash PaymentMethod = "efectivo"
	// MethodCard is charged synchronously when the payment is processed.
	MethodCard PaymentMethod = "tarjeta"
)

// Validate checks that the method is one of the accepted payment methods.
func (m PaymentMethod) Validate() error {
	if m != MethodCash && m != MethodCard {
		return errs.NewValueIsInvalidErrorWithCause("payment_method",
			fmt.Errorf("%q is not a valid payment method, valid: efectivo, tarjeta", string(m)))
	}
	return nil
}
