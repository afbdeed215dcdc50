package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/pkg/errs"
)

// PaymentRepository persists the append-only payment ledger.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a ledger repository over the given handle.
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Add(ctx context.Context, rec *payment.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	model := paymentToModel(rec)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]*payment.Record, error) {
	var models []PaymentModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*payment.Record, 0, len(models))
	for _, model := range models {
		rec, err := paymentFromModel(model)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *PaymentRepository) GetLastByOrder(ctx context.Context, orderID int) (*payment.Record, error) {
	var model PaymentModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("payment", orderID)
	}
	if err != nil {
		return nil, err
	}
	return paymentFromModel(model)
}

// NextID follows the legacy ledger numbering: record count plus one.
func (r *PaymentRepository) NextID(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentModel{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}
