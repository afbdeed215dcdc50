package queries

import (
	"errors"
	"strings"

	"domicilios/internal/pkg/guard"
)

var (
	ErrGetOrdersByPhoneQueryIsNotConstructed = errors.New(
		"GetOrdersByPhoneQuery must be created via NewGetOrdersByPhoneQuery constructor",
	)
	ErrPhoneIsRequired = errors.New("phone is required")
)

// GetOrdersByPhoneQuery retrieves a customer's orders by phone number.
// The phone is normalized the same way order creation normalizes it, so
// "+57 300 1112233" and "3001112233" address the same customer.
type GetOrdersByPhoneQuery struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

// NewGetOrdersByPhoneQuery creates a query to look up orders by customer phone.
func NewGetOrdersByPhoneQuery(phone string) (GetOrdersByPhoneQuery, error) {
	q := GetOrdersByPhoneQuery{guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(phone) == "" {
		return GetOrdersByPhoneQuery{}, ErrPhoneIsRequired
	}
	q.phone = phone

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPhoneQueryIsNotConstructed)
}

// Phone returns the phone as supplied, before normalization.
func (q GetOrdersByPhoneQuery) Phone() string { return q.phone }
