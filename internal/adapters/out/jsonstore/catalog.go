package jsonstore

import (
	"context"

	"domicilios/internal/core/domain/model/business"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/product"
	"domicilios/internal/pkg/errs"
)

// The catalog collections are seed data and read-only from the application's
// point of view, so the repositories here expose no write methods.

type businessDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Phone        string  `json:"phone"`
	Rating       float64 `json:"rating"`
	IsOpen       bool    `json:"is_open"`
	DeliveryTime int     `json:"delivery_time"`
}

func businessFromDTO(dto businessDTO) (*business.Business, error) {
	loc, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	return business.RestoreBusiness(
		dto.ID, dto.Name, dto.Category, dto.Address, loc,
		dto.Phone, dto.Rating, dto.IsOpen, dto.DeliveryTime,
	)
}

type productDTO struct {
	ID          int     `json:"id"`
	BusinessID  int     `json:"business_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	Image       string  `json:"image"`
}

func productFromDTO(dto productDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID, dto.BusinessID, dto.Name, dto.Price,
		dto.Description, dto.Category, dto.Available, dto.Image,
	)
}

// BusinessRepository reads the business catalog from the store.
type BusinessRepository struct {
	store *Store
}

// NewBusinessRepository creates a business catalog repository.
func NewBusinessRepository(store *Store) *BusinessRepository {
	return &BusinessRepository{store: store}
}

func (r *BusinessRepository) Get(_ context.Context, id int) (*business.Business, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []businessDTO
	if err := r.store.readCollection(businessesFile, &dtos); err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.ID == id {
			return businessFromDTO(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("business", id)
}

func (r *BusinessRepository) GetAll(_ context.Context) ([]*business.Business, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []businessDTO
	if err := r.store.readCollection(businessesFile, &dtos); err != nil {
		return nil, err
	}

	businesses := make([]*business.Business, 0, len(dtos))
	for _, dto := range dtos {
		b, err := businessFromDTO(dto)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}

// ProductRepository reads the product catalog from the store.
type ProductRepository struct {
	store *Store
}

// NewProductRepository creates a product catalog repository.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Get(_ context.Context, id int) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []productDTO
	if err := r.store.readCollection(productsFile, &dtos); err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.ID == id {
			return productFromDTO(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("product", id)
}

func (r *ProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []productDTO
	if err := r.store.readCollection(productsFile, &dtos); err != nil {
		return nil, err
	}
	return productsFromDTOs(dtos, nil)
}

func (r *ProductRepository) GetAllByBusiness(_ context.Context, businessID int) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []productDTO
	if err := r.store.readCollection(productsFile, &dtos); err != nil {
		return nil, err
	}
	return productsFromDTOs(dtos, &businessID)
}

func productsFromDTOs(dtos []productDTO, businessID *int) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		if businessID != nil && dto.BusinessID != *businessID {
			continue
		}
		p, err := productFromDTO(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
