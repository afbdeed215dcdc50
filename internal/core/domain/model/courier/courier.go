package courier

import (
	"errors"
	"fmt"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is the aggregate root for a delivery courier. Its central
// invariant couples availability to the order binding:
//
//	available == false  ⟺  currentOrderID != nil
//
// The two fields only ever change together, inside Take and Release, so a
// courier can never show available while bound to an active order.
type Courier struct {
	id              int
	name            string
	phone           string
	location        kernel.GeoPoint
	zone            string
	available       bool
	vehicle         string
	rating          float64
	currentOrderID  *int
	totalDeliveries int
	guard           guard.ConstructorGuard
}

// NewCourier creates an available courier with no active order.
func NewCourier(
	id int,
	name string,
	phone string,
	location kernel.GeoPoint,
	zone string,
	vehicle string,
	rating float64,
) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setLocation(location),
		c.setRating(rating),
	); err != nil {
		return nil, err
	}

	c.zone = zone
	c.vehicle = vehicle
	c.available = true
	return c, nil
}

// RestoreCourier reconstructs a courier from persistent storage, enforcing
// the availability invariant on the restored state.
func RestoreCourier(
	id int,
	name string,
	phone string,
	location kernel.GeoPoint,
	zone string,
	available bool,
	vehicle string,
	rating float64,
	currentOrderID *int,
	totalDeliveries int,
) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setLocation(location),
		c.setRating(rating),
	); err != nil {
		return nil, err
	}

	if available == (currentOrderID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("available",
			fmt.Errorf("availability %t is inconsistent with current order binding", available))
	}

	c.zone = zone
	c.vehicle = vehicle
	c.available = available
	c.currentOrderID = currentOrderID
	c.totalDeliveries = totalDeliveries
	return c, nil
}

// Validate checks that the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id == other.id
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() int { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string { return c.phone }

// Location returns the courier's last known position.
func (c *Courier) Location() kernel.GeoPoint { return c.location }

// Zone returns the courier's coverage-zone label.
func (c *Courier) Zone() string { return c.zone }

// Available reports whether the courier can take a new order.
func (c *Courier) Available() bool { return c.available }

// Vehicle returns the courier's vehicle type label.
func (c *Courier) Vehicle() string { return c.vehicle }

// Rating returns the courier's service rating.
func (c *Courier) Rating() float64 { return c.rating }

// CurrentOrderID returns the id of the order the courier is carrying,
// nil when idle.
func (c *Courier) CurrentOrderID() *int { return c.currentOrderID }

// TotalDeliveries returns the number of completed deliveries.
func (c *Courier) TotalDeliveries() int { return c.totalDeliveries }

// Take binds the courier to an order, making it unavailable. Both invariant
// fields change in this single mutation.
func (c *Courier) Take(orderID int) error {
	if !c.available {
		return errs.NewInvalidStateError(
			fmt.Sprintf("courier %d is not available", c.id))
	}
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.available = false
	c.currentOrderID = &orderID
	return nil
}

// Release frees the courier after a completed delivery, restoring
// availability, clearing the order binding, and counting the delivery.
func (c *Courier) Release() error {
	if c.currentOrderID == nil {
		return errs.NewInvalidStateError(
			fmt.Sprintf("courier %d has no active order", c.id))
	}

	c.available = true
	c.currentOrderID = nil
	c.totalDeliveries++
	return nil
}

// Relocate updates the courier's last known position.
func (c *Courier) Relocate(location kernel.GeoPoint) error {
	return c.setLocation(location)
}

func (c *Courier) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier_id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Courier) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	c.rating = rating
	return nil
}
