// Package business contains the read-only Business catalog entity. The core
// never mutates businesses; it reads them to validate orders and to snapshot
// name, location, and baseline delivery time at order creation.
package business

import (
	"errors"
	"fmt"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrBusinessIsNotConstructed is returned when using an improperly
// initialized Business.
var ErrBusinessIsNotConstructed = errors.New("Business must be created via RestoreBusiness constructor")

// Business is a catalog entry owned by an external collaborator.
type Business struct {
	id           int
	name         string
	category     string
	address      string
	location     kernel.GeoPoint
	phone        string
	rating       float64
	isOpen       bool
	deliveryTime int
	guard        guard.ConstructorGuard
}

// RestoreBusiness reconstructs a business from the catalog store.
func RestoreBusiness(
	id int,
	name string,
	category string,
	address string,
	location kernel.GeoPoint,
	phone string,
	rating float64,
	isOpen bool,
	deliveryTime int,
) (*Business, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("business_id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if deliveryTime <= 0 {
		deliveryTime = 30
	}

	return &Business{
		id:           id,
		name:         name,
		category:     category,
		address:      address,
		location:     location,
		phone:        phone,
		rating:       rating,
		isOpen:       isOpen,
		deliveryTime: deliveryTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the business was created through RestoreBusiness.
func (b *Business) Validate() error {
	if b == nil {
		return ErrBusinessIsNotConstructed
	}
	return b.guard.Validate(ErrBusinessIsNotConstructed)
}

// ID returns the business id.
func (b *Business) ID() int { return b.id }

// Name returns the business display name.
func (b *Business) Name() string { return b.name }

// Category returns the catalog category label.
func (b *Business) Category() string { return b.category }

// Address returns the street address.
func (b *Business) Address() string { return b.address }

// Location returns the pickup coordinates.
func (b *Business) Location() kernel.GeoPoint { return b.location }

// Phone returns the business contact phone.
func (b *Business) Phone() string { return b.phone }

// Rating returns the business rating.
func (b *Business) Rating() float64 { return b.rating }

// IsOpen reports whether the business currently accepts orders.
func (b *Business) IsOpen() bool { return b.isOpen }

// DeliveryTime returns the baseline preparation-plus-delivery minutes used
// as the base of the ETA formula.
func (b *Business) DeliveryTime() int { return b.deliveryTime }
