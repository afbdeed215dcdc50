package order

import (
	"errors"
	"strings"
	"unicode"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly
// initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the delivery contact snapshotted into an order: who ordered,
// how to reach them, and where to deliver.
type Customer struct { //nolint:recvcheck //using for validation
	name     string
	phone    string
	address  string
	location kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewCustomer creates a validated customer snapshot. Name, phone, and address
// are required; the location must be a constructed GeoPoint.
func NewCustomer(name string, phone string, address string, location kernel.GeoPoint) (Customer, error) {
	customer := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
		customer.setLocation(location),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate checks that the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone as stored on the order.
// Order placement stores the NormalizePhone form; lookups normalize again,
// so restored legacy records with raw phones still match.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the free-text delivery address.
func (c Customer) Address() string {
	return c.address
}

// Location returns the delivery coordinates.
func (c Customer) Location() kernel.GeoPoint {
	return c.location
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("customer_address")
	}
	c.address = address
	return nil
}

func (c *Customer) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

// NormalizePhone reduces a phone number to its digits-only matching key.
// A leading country code "57" is stripped only when the digit string is
// exactly 12 characters long, so "+57 300 1112233" and "3001112233" share
// the same 10-digit key. Phone-based order lookup depends on this exact
// behavior, 11 or 13 digit strings keep their prefix.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "57") {
		return digits[2:]
	}
	return digits
}
