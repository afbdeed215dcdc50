package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/pkg/errs"
)

// CourierRepository persists couriers through GORM.
type CourierRepository struct {
	db *gorm.DB
}

// NewCourierRepository creates a courier repository over the given handle.
func NewCourierRepository(db *gorm.DB) *CourierRepository {
	return &CourierRepository{db: db}
}

func (r *CourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	model := courierToModel(c)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *CourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	model := courierToModel(c)
	result := r.db.WithContext(ctx).
		Model(&CourierModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", c.ID())
	}
	return nil
}

func (r *CourierRepository) Get(ctx context.Context, id int) (*courier.Courier, error) {
	var model CourierModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	if err != nil {
		return nil, err
	}
	return courierFromModel(model)
}

func (r *CourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var models []CourierModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return couriersFromModels(models)
}

func (r *CourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	var models []CourierModel
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return couriersFromModels(models)
}

func couriersFromModels(models []CourierModel) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(models))
	for _, model := range models {
		c, err := courierFromModel(model)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}
