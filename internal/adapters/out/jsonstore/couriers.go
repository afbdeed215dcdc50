package jsonstore

import (
	"context"

	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/pkg/errs"
)

// courierDTO mirrors the legacy on-disk courier document.
type courierDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Zone            string  `json:"zone"`
	Available       bool    `json:"available"`
	Vehicle         string  `json:"vehicle"`
	Rating          float64 `json:"rating"`
	CurrentOrderID  *int    `json:"current_order_id,omitempty"`
	TotalDeliveries int     `json:"total_deliveries"`
}

func courierToDTO(c *courier.Courier) courierDTO {
	return courierDTO{
		ID:              c.ID(),
		Name:            c.Name(),
		Phone:           c.Phone(),
		Lat:             c.Location().Lat(),
		Lng:             c.Location().Lng(),
		Zone:            c.Zone(),
		Available:       c.Available(),
		Vehicle:         c.Vehicle(),
		Rating:          c.Rating(),
		CurrentOrderID:  c.CurrentOrderID(),
		TotalDeliveries: c.TotalDeliveries(),
	}
}

func courierFromDTO(dto courierDTO) (*courier.Courier, error) {
	loc, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		dto.ID, dto.Name, dto.Phone, loc, dto.Zone,
		dto.Available, dto.Vehicle, dto.Rating,
		dto.CurrentOrderID, dto.TotalDeliveries,
	)
}

func findCourierIndex(dtos []courierDTO, id int) (int, bool) {
	for i := range dtos {
		if dtos[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// CourierRepository is the standalone courier repository over the store.
type CourierRepository struct {
	store *Store
}

// NewCourierRepository creates a courier repository over the store.
func NewCourierRepository(store *Store) *CourierRepository {
	return &CourierRepository{store: store}
}

func (r *CourierRepository) Add(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []courierDTO
	if err := r.store.readCollection(couriersFile, &dtos); err != nil {
		return err
	}
	dtos = append(dtos, courierToDTO(c))
	return r.store.writeCollection(couriersFile, dtos)
}

func (r *CourierRepository) Update(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []courierDTO
	if err := r.store.readCollection(couriersFile, &dtos); err != nil {
		return err
	}

	i, ok := findCourierIndex(dtos, c.ID())
	if !ok {
		return errs.NewObjectNotFoundError("courier", c.ID())
	}
	dtos[i] = courierToDTO(c)
	return r.store.writeCollection(couriersFile, dtos)
}

func (r *CourierRepository) Get(_ context.Context, id int) (*courier.Courier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []courierDTO
	if err := r.store.readCollection(couriersFile, &dtos); err != nil {
		return nil, err
	}

	i, ok := findCourierIndex(dtos, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return courierFromDTO(dtos[i])
}

func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []courierDTO
	if err := r.store.readCollection(couriersFile, &dtos); err != nil {
		return nil, err
	}
	return couriersFromDTOs(dtos, false)
}

func (r *CourierRepository) GetAllAvailable(_ context.Context) ([]*courier.Courier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []courierDTO
	if err := r.store.readCollection(couriersFile, &dtos); err != nil {
		return nil, err
	}
	return couriersFromDTOs(dtos, true)
}

func couriersFromDTOs(dtos []courierDTO, onlyAvailable bool) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		if onlyAvailable && !dto.Available {
			continue
		}
		c, err := courierFromDTO(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}
