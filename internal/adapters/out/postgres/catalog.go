package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"domicilios/internal/core/domain/model/business"
	"domicilios/internal/core/domain/model/product"
	"domicilios/internal/pkg/errs"
)

// BusinessRepository reads the business catalog. Businesses and products are
// seeded data; the engine never writes them.
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a business catalog repository.
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Get(ctx context.Context, id int) (*business.Business, error) {
	var model BusinessModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("business", id)
	}
	if err != nil {
		return nil, err
	}
	return businessFromModel(model)
}

func (r *BusinessRepository) GetAll(ctx context.Context) ([]*business.Business, error) {
	var models []BusinessModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	businesses := make([]*business.Business, 0, len(models))
	for _, model := range models {
		b, err := businessFromModel(model)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}

// ProductRepository reads the product catalog.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product catalog repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*product.Product, error) {
	var model ProductModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("product", id)
	}
	if err != nil {
		return nil, err
	}
	return productFromModel(model)
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return productsFromModels(models)
}

func (r *ProductRepository) GetAllByBusiness(ctx context.Context, businessID int) ([]*product.Product, error) {
	var models []ProductModel
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return productsFromModels(models)
}

func productsFromModels(models []ProductModel) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(models))
	for _, model := range models {
		p, err := productFromModel(model)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
