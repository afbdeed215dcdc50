// Package ports defines the contracts between the core and its
// collaborators: per-collection repositories over the logical store,
// the unit of work that groups writes, and the fire-and-forget notifier.
package ports

import (
	"context"

	"domicilios/internal/core/domain/model/business"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/domain/model/product"
)

// OrderRepository is the persistence contract for the orders collection.
// Update of an id that does not exist returns an ObjectNotFoundError rather
// than silently preserving stale state.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, o *order.Order) error

	// Update replaces the stored order whose id matches.
	Update(ctx context.Context, o *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetFirstPending retrieves the oldest order still in pendiente status.
	// Used by the dispatch job to pick the next order to assign.
	GetFirstPending(ctx context.Context) (*order.Order, error)

	// NextID returns max(existing ids)+1. Ids are monotonic and never reused.
	NextID(ctx context.Context) (int, error)
}

// CourierRepository is the persistence contract for the couriers collection.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, c *courier.Courier) error

	// Update replaces the stored courier whose id matches.
	Update(ctx context.Context, c *courier.Courier) error

	// Get retrieves a courier by id.
	Get(ctx context.Context, id int) (*courier.Courier, error)

	// GetAll retrieves every stored courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllAvailable retrieves couriers that can take a new order.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}

// BusinessRepository is the read-only catalog contract for businesses.
type BusinessRepository interface {
	// Get retrieves a business by id.
	Get(ctx context.Context, id int) (*business.Business, error)

	// GetAll retrieves every catalog business.
	GetAll(ctx context.Context) ([]*business.Business, error)
}

// ProductRepository is the read-only catalog contract for products.
type ProductRepository interface {
	// Get retrieves a product by id.
	Get(ctx context.Context, id int) (*product.Product, error)

	// GetAll retrieves every catalog product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllByBusiness retrieves the products owned by one business.
	GetAllByBusiness(ctx context.Context, businessID int) ([]*product.Product, error)
}

// PaymentRepository is the persistence contract for the append-only payment
// ledger.
type PaymentRepository interface {
	// Add appends a ledger record.
	Add(ctx context.Context, r *payment.Record) error

	// GetAll retrieves the full ledger, oldest first.
	GetAll(ctx context.Context) ([]*payment.Record, error)

	// GetLastByOrder retrieves the most recent record for an order.
	// Returns an ObjectNotFoundError when the order has no records.
	GetLastByOrder(ctx context.Context, orderID int) (*payment.Record, error)

	// NextID returns count of records + 1, the ledger's id convention.
	NextID(ctx context.Context) (int, error)
}
