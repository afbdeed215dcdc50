package order

import (
	"errors"
	"fmt"
	"strings"

	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// maxNotesLength caps the free-text note attached to a line item.
const maxNotesLength = 500

// ErrLineItemIsNotConstructed is returned when using an improperly
// initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product-quantity-price entry within an order. The unit
// price is snapshotted at creation time and is immune to later product price
// changes; the subtotal is always unitPrice × quantity.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   int
	productName string
	quantity    int
	unitPrice   float64
	subtotal    float64
	notes       string
	guard       guard.ConstructorGuard
}

// NewLineItem creates a validated line item. Quantity must be at least 1 and
// the unit price non-negative. Notes are trimmed and truncated to 500
// characters.
func NewLineItem(productID int, productName string, quantity int, unitPrice float64, notes string) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.setNotes(notes)
	item.subtotal = item.unitPrice * float64(item.quantity)
	return item, nil
}

// Validate checks that the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the id of the ordered product.
func (li LineItem) ProductID() int {
	return li.productID
}

// ProductName returns the product name snapshotted at order time.
func (li LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the ordered unit count.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price snapshotted at order time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() float64 {
	return li.subtotal
}

// Notes returns the trimmed, length-capped free-text note.
func (li LineItem) Notes() string {
	return li.notes
}

func (li *LineItem) setProductID(id int) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("product_id")
	}
	li.productID = id
	return nil
}

func (li *LineItem) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product_name")
	}
	li.productName = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("unit_price")
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setNotes(notes string) {
	notes = strings.TrimSpace(notes)
	if runes := []rune(notes); len(runes) > maxNotesLength {
		notes = string(runes[:maxNotesLength])
	}
	li.notes = notes
}
