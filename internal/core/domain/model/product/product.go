// Package product contains the read-only Product catalog entity. Order
// creation snapshots the current price and name into line items; later
// catalog changes never touch existing orders.
package product

import (
	"errors"
	"fmt"

	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when using an improperly
// initialized Product.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")

// Product is a catalog entry owned by an external collaborator.
type Product struct {
	id          int
	businessID  int
	name        string
	price       float64
	description string
	category    string
	available   bool
	image       string
	guard       guard.ConstructorGuard
}

// RestoreProduct reconstructs a product from the catalog store.
func RestoreProduct(
	id int,
	businessID int,
	name string,
	price float64,
	description string,
	category string,
	available bool,
	image string,
) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("product_id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return &Product{
		id:          id,
		businessID:  businessID,
		name:        name,
		price:       price,
		description: description,
		category:    category,
		available:   available,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the product was created through RestoreProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product id.
func (p *Product) ID() int { return p.id }

// BusinessID returns the owning business id.
func (p *Product) BusinessID() int { return p.businessID }

// Name returns the product display name.
func (p *Product) Name() string { return p.name }

// Price returns the current catalog price.
func (p *Product) Price() float64 { return p.price }

// Description returns the catalog description.
func (p *Product) Description() string { return p.description }

// Category returns the catalog category label.
func (p *Product) Category() string { return p.category }

// Available reports whether the product can currently be ordered.
func (p *Product) Available() bool { return p.available }

// Image returns the product image reference.
func (p *Product) Image() string { return p.image }
