package commands

import (
	"errors"
	"strings"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired   = errors.New("customer phone is required")
	ErrCustomerAddressIsRequired = errors.New("customer address is required")
	ErrBusinessIDIsInvalid       = errors.New("business id must be greater than 0")
	ErrItemProductIDIsInvalid    = errors.New("item product id must be greater than 0")
)

// ItemInput is one requested order line: which product and how many.
// Notes carry preparation instructions passed through to the line item.
type ItemInput struct {
	ProductID int
	Quantity  int
	Notes     string
}

// CreateOrderCommand represents a request to place a new order.
// Carries the customer contact data, the drop-off coordinates, the ordered
// items and the chosen payment method.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "Laura", "3001234567", "Cra 43A #1-50", 6.2100, -75.5700,
//	    1, []ItemInput{{ProductID: 3, Quantity: 2}}, order.MethodCash, 2000,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName    string
	customerPhone   string
	customerAddress string
	customerLat     float64
	customerLng     float64
	businessID      int
	items           []ItemInput
	paymentMethod   order.PaymentMethod
	tipAmount       int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the customer contact fields, the business reference, the item
// product ids and the payment method. Coordinates, quantities and the item
// list itself are resolved by the handler so that catalog lookups report
// their errors first.
func NewCreateOrderCommand(
	customerName, customerPhone, customerAddress string,
	customerLat, customerLng float64,
	businessID int,
	items []ItemInput,
	paymentMethod order.PaymentMethod,
	tipAmount int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerLat: customerLat,
		customerLng: customerLng,
		tipAmount:   tipAmount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setCustomerAddress(customerAddress),
		cmd.setBusinessID(businessID),
		cmd.setItems(items),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the customer's phone as supplied, before normalization.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// CustomerAddress returns the drop-off street address.
func (c CreateOrderCommand) CustomerAddress() string { return c.customerAddress }

// CustomerLat returns the drop-off latitude.
func (c CreateOrderCommand) CustomerLat() float64 { return c.customerLat }

// CustomerLng returns the drop-off longitude.
func (c CreateOrderCommand) CustomerLng() float64 { return c.customerLng }

// BusinessID returns the id of the business the order is placed against.
func (c CreateOrderCommand) BusinessID() int { return c.businessID }

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput { return c.items }

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

// TipAmount returns the tip in whole pesos. May be zero.
func (c CreateOrderCommand) TipAmount() int { return c.tipAmount }

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setCustomerAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrCustomerAddressIsRequired
	}

	c.customerAddress = address
	return nil
}

func (c *CreateOrderCommand) setBusinessID(businessID int) error {
	if businessID <= 0 {
		return ErrBusinessIDIsInvalid
	}

	c.businessID = businessID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	for _, item := range items {
		if item.ProductID <= 0 {
			return ErrItemProductIDIsInvalid
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
