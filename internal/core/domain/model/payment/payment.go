// Package payment contains the append-only PaymentRecord ledger entry and
// the card-details value object validated before any payment mutation.
package payment

import (
	"errors"
	"fmt"
	"time"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized
// payment Record.
var ErrRecordIsNotConstructed = errors.New("payment Record must be created via NewRecord constructor")

// Record is one entry in the append-only payment ledger. The logical
// "current" payment of an order is its most recent record; storage enforces
// no uniqueness, the ledger only grows.
type Record struct {
	id        int
	orderID   int
	amount    float64
	tipAmount int
	method    order.PaymentMethod
	status    order.PaymentStatus
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewRecord creates a ledger entry for a payment attempt against an order.
// Amount is the order total at the time of payment.
func NewRecord(
	id int,
	orderID int,
	amount float64,
	tipAmount int,
	method order.PaymentMethod,
	status order.PaymentStatus,
	createdAt time.Time,
) (*Record, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("payment_id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	if err := errors.Join(method.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Record{
		id:        id,
		orderID:   orderID,
		amount:    amount,
		tipAmount: tipAmount,
		method:    method,
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the record was created through NewRecord.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the ledger entry id.
func (r *Record) ID() int { return r.id }

// OrderID returns the paid order's id.
func (r *Record) OrderID() int { return r.orderID }

// Amount returns the order total captured at payment time.
func (r *Record) Amount() float64 { return r.amount }

// TipAmount returns the tip included in the amount.
func (r *Record) TipAmount() int { return r.tipAmount }

// Method returns the payment method used.
func (r *Record) Method() order.PaymentMethod { return r.method }

// Status returns the resulting payment status.
func (r *Record) Status() order.PaymentStatus { return r.status }

// CreatedAt returns the ledger entry timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
