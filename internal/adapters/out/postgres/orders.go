package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/errs"
)

// OrderRepository persists orders through GORM.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository over the given handle,
// which may be a plain connection or a transaction.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	model := orderToModel(o)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	model := orderToModel(o)
	result := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if err != nil {
		return nil, err
	}
	return orderFromModel(model)
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var models []OrderModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return ordersFromModels(models)
}

func (r *OrderRepository) GetFirstPending(ctx context.Context) (*order.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).
		Where("status = ?", order.StatusPending.String()).
		Order("id").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", "first pending")
	}
	if err != nil {
		return nil, err
	}
	return orderFromModel(model)
}

func (r *OrderRepository) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Select("COALESCE(MAX(id), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func ordersFromModels(models []OrderModel) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(models))
	for _, model := range models {
		o, err := orderFromModel(model)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
