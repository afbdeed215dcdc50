package order

import (
	"errors"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrBusinessRefIsNotConstructed is returned when using an improperly
// initialized BusinessRef.
var ErrBusinessRefIsNotConstructed = errors.New("BusinessRef must be created via NewBusinessRef constructor")

// BusinessRef is the denormalized business snapshot embedded in an order at
// creation time. It does not follow later catalog changes.
type BusinessRef struct { //nolint:recvcheck //using for validation
	id       int
	name     string
	location kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewBusinessRef creates a validated business snapshot.
func NewBusinessRef(id int, name string, location kernel.GeoPoint) (BusinessRef, error) {
	ref := BusinessRef{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		ref.setID(id),
		ref.setName(name),
		ref.setLocation(location),
	); err != nil {
		return BusinessRef{}, err
	}

	return ref, nil
}

// Validate checks that the reference was created through NewBusinessRef.
func (b BusinessRef) Validate() error {
	return b.guard.Validate(ErrBusinessRefIsNotConstructed)
}

// ID returns the referenced business id.
func (b BusinessRef) ID() int {
	return b.id
}

// Name returns the business name at order time.
func (b BusinessRef) Name() string {
	return b.name
}

// Location returns the business pickup coordinates.
func (b BusinessRef) Location() kernel.GeoPoint {
	return b.location
}

func (b *BusinessRef) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("business_id")
	}
	b.id = id
	return nil
}

func (b *BusinessRef) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("business_name")
	}
	b.name = name
	return nil
}

func (b *BusinessRef) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	b.location = location
	return nil
}
