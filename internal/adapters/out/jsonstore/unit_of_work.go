package jsonstore

import (
	"context"

	"domicilios/internal/core/domain/model/business"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/domain/model/product"
	"domicilios/internal/core/ports"
	"domicilios/internal/pkg/errs"
)

// UnitOfWorkFactory creates unit of work instances over one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each business operation gets its own
// instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the JSON files.
// Begin takes the store-wide write lock; repository calls stage changes in
// memory; Commit flushes every dirty collection to disk and releases the
// lock; Rollback just releases the lock, discarding staged changes. The lock
// is what gives assign/complete their atomicity across two collections.
//
// Instances are single-goroutine: the same goroutine that calls Begin must
// call Commit or Rollback, since the underlying lock is not reentrant.
type UnitOfWork struct {
	store  *Store
	active bool

	orders   txCollection[orderDTO]
	couriers txCollection[courierDTO]
	payments txCollection[paymentDTO]
}

// txCollection lazily loads one collection and tracks whether it changed.
// Access happens under the unit of work's write lock, so no locking here.
type txCollection[T any] struct {
	loaded bool
	dirty  bool
	items  []T
}

func loadTx[T any](s *Store, c *txCollection[T], file string) error {
	if c.loaded {
		return nil
	}
	if err := s.readCollection(file, &c.items); err != nil {
		return err
	}
	c.loaded = true
	return nil
}

// Begin takes the store lock. Calling Begin on an already active unit of
// work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit flushes staged changes and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	defer uow.finish()

	if uow.orders.dirty {
		if err := uow.store.writeCollection(ordersFile, uow.orders.items); err != nil {
			return err
		}
	}
	if uow.couriers.dirty {
		if err := uow.store.writeCollection(couriersFile, uow.couriers.items); err != nil {
			return err
		}
	}
	if uow.payments.dirty {
		if err := uow.store.writeCollection(paymentsFile, uow.payments.items); err != nil {
			return err
		}
	}
	return nil
}

// Rollback discards staged changes and releases the store lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.finish()
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.orders = txCollection[orderDTO]{}
	uow.couriers = txCollection[courierDTO]{}
	uow.payments = txCollection[paymentDTO]{}
	uow.store.mu.Unlock()
}

// OrderRepository returns the transaction-scoped order repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return txOrderRepository{uow: uow}
}

// CourierRepository returns the transaction-scoped courier repository.
func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return txCourierRepository{uow: uow}
}

// BusinessRepository returns the transaction-scoped business catalog view.
func (uow *UnitOfWork) BusinessRepository() ports.BusinessRepository {
	return txBusinessRepository{uow: uow}
}

// ProductRepository returns the transaction-scoped product catalog view.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return txProductRepository{uow: uow}
}

// PaymentRepository returns the transaction-scoped ledger repository.
func (uow *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return txPaymentRepository{uow: uow}
}

type txOrderRepository struct {
	uow *UnitOfWork
}

func (r txOrderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := loadTx(r.uow.store, &r.uow.orders, ordersFile); err != nil {
		return err
	}
	r.uow.orders.items = append(r.uow.orders.items, orderToDTO(o))
	r.uow.orders.dirty = true
	return nil
}

func (r txOrderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := loadTx(r.uow.store, &r.uow.orders, ordersFile); err != nil {
		return err
	}

	i, ok := findOrderIndex(r.uow.orders.items, o.ID())
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	r.uow.orders.items[i] = orderToDTO(o)
	r.uow.orders.dirty = true
	return nil
}

func (r txOrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	if err := loadTx(r.uow.store, &r.uow.orders, ordersFile); err != nil {
		return nil, err
	}

	i, ok := findOrderIndex(r.uow.orders.items, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return orderFromDTO(r.uow.orders.items[i])
}

func (r txOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if err := loadTx(r.uow.store, &r.uow.orders, ordersFile); err != nil {
		return nil, err
	}
	return ordersFromDTOs(r.uow.orders.items)
}

func (r txOrderRepository) GetFirstPending(_ context.Context) (*order.Order, error) {
	if err := loadTx(r.uow.store, &r.uow.orders, ordersFile); err != nil {
		return nil, err
	}
	return firstPendingOrder(r.uow.orders.items)
}

func (r txOrderRepository) NextID(_ context.Context) (int, error) {
	if err := loadTx(r.uow.store, &r.uow.orders, ordersFile); err != nil {
		return 0, err
	}
	return nextOrderID(r.uow.orders.items), nil
}

type txCourierRepository struct {
	uow *UnitOfWork
}

func (r txCourierRepository) Add(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := loadTx(r.uow.store, &r.uow.couriers, couriersFile); err != nil {
		return err
	}
	r.uow.couriers.items = append(r.uow.couriers.items, courierToDTO(c))
	r.uow.couriers.dirty = true
	return nil
}

func (r txCourierRepository) Update(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := loadTx(r.uow.store, &r.uow.couriers, couriersFile); err != nil {
		return err
	}

	i, ok := findCourierIndex(r.uow.couriers.items, c.ID())
	if !ok {
		return errs.NewObjectNotFoundError("courier", c.ID())
	}
	r.uow.couriers.items[i] = courierToDTO(c)
	r.uow.couriers.dirty = true
	return nil
}

func (r txCourierRepository) Get(_ context.Context, id int) (*courier.Courier, error) {
	if err := loadTx(r.uow.store, &r.uow.couriers, couriersFile); err != nil {
		return nil, err
	}

	i, ok := findCourierIndex(r.uow.couriers.items, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return courierFromDTO(r.uow.couriers.items[i])
}

func (r txCourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	if err := loadTx(r.uow.store, &r.uow.couriers, couriersFile); err != nil {
		return nil, err
	}
	return couriersFromDTOs(r.uow.couriers.items, false)
}

func (r txCourierRepository) GetAllAvailable(_ context.Context) ([]*courier.Courier, error) {
	if err := loadTx(r.uow.store, &r.uow.couriers, couriersFile); err != nil {
		return nil, err
	}
	return couriersFromDTOs(r.uow.couriers.items, true)
}

// The catalog views read files directly: the unit of work already holds the
// store lock, and the catalog is never written here.

type txBusinessRepository struct {
	uow *UnitOfWork
}

func (r txBusinessRepository) Get(_ context.Context, id int) (*business.Business, error) {
	var dtos []businessDTO
	if err := r.uow.store.readCollection(businessesFile, &dtos); err != nil {
		return nil, err
	}
	for _, dto := range dtos {
		if dto.ID == id {
			return businessFromDTO(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("business", id)
}

func (r txBusinessRepository) GetAll(_ context.Context) ([]*business.Business, error) {
	var dtos []businessDTO
	if err := r.uow.store.readCollection(businessesFile, &dtos); err != nil {
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

type txProductRepository struct {
	uow *UnitOfWork
}

func (r txProductRepository) Get(_ context.Context, id int) (*product.Product, error) {
	var dtos []productDTO
	if err := r.uow.store.readCollection(productsFile, &dtos); err != nil {
		return nil, err
	}
	for _, dto := range dtos {
		if dto.ID == id {
			return productFromDTO(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("product", id)
}

func (r txProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	var dtos []productDTO
	if err := r.uow.store.readCollection(productsFile, &dtos); err != nil {
		return nil, err
	}
	return productsFromDTOs(dtos, nil)
}

func (r txProductRepository) GetAllByBusiness(_ context.Context, businessID int) ([]*product.Product, error) {
	var dtos []productDTO
	if err := r.uow.store.readCollection(productsFile, &dtos); err != nil {
		return nil, err
	}
	return productsFromDTOs(dtos, &businessID)
}

type txPaymentRepository struct {
	uow *UnitOfWork
}

func (r txPaymentRepository) Add(_ context.Context, record *payment.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := loadTx(r.uow.store, &r.uow.payments, paymentsFile); err != nil {
		return err
	}
	r.uow.payments.items = append(r.uow.payments.items, paymentToDTO(record))
	r.uow.payments.dirty = true
	return nil
}

func (r txPaymentRepository) GetAll(_ context.Context) ([]*payment.Record, error) {
	if err := loadTx(r.uow.store, &r.uow.payments, paymentsFile); err != nil {
		return nil, err
	}
	return paymentsFromDTOs(r.uow.payments.items)
}

func (r txPaymentRepository) GetLastByOrder(_ context.Context, orderID int) (*payment.Record, error) {
	if err := loadTx(r.uow.store, &r.uow.payments, paymentsFile); err != nil {
		return nil, err
	}
	return lastPaymentByOrder(r.uow.payments.items, orderID)
}

func (r txPaymentRepository) NextID(_ context.Context) (int, error) {
	if err := loadTx(r.uow.store, &r.uow.payments, paymentsFile); err != nil {
		return 0, err
	}
	return len(r.uow.payments.items) + 1, nil
}
