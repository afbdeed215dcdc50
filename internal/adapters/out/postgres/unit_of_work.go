package postgres

import (
	"context"

	"gorm.io/gorm"

	"domicilios/internal/core/ports"
)

// UnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// handlers never share transaction state.
//
// Example:
//
//	factory := NewUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWorkFactory struct {
	db *gorm.DB
}

// NewUnitOfWorkFactory creates a factory over the given connection.
func NewUnitOfWorkFactory(db *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction started yet.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork coordinates a database transaction across the repositories of a
// single business operation. Repository accessors return repositories bound
// to the active transaction, or to the plain connection when none is active.
type UnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin on an instance with an active
// transaction is a no-op; nested transactions are never created.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the transaction. The instance cannot be reused afterwards.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Safe to defer after a successful Commit
// only if the caller tolerates gorm.ErrInvalidTransaction.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *UnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(uow.handle())
}

// CourierRepository returns a courier repository bound to the current transaction.
func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return NewCourierRepository(uow.handle())
}

// BusinessRepository returns a business catalog view bound to the current transaction.
func (uow *UnitOfWork) BusinessRepository() ports.BusinessRepository {
	return NewBusinessRepository(uow.handle())
}

// ProductRepository returns a product catalog view bound to the current transaction.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return NewProductRepository(uow.handle())
}

// PaymentRepository returns a ledger repository bound to the current transaction.
func (uow *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return NewPaymentRepository(uow.handle())
}
