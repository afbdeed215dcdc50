// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"domicilios/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the repositories
// it actually touches.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CatalogRepoFactory provides read access to the business and product catalogs.
	CatalogRepoFactory interface {
		BusinessRepository() ports.BusinessRepository
		ProductRepository() ports.ProductRepository
	}

	// PaymentRepoFactory provides access to the payment ledger within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// the catalog to resolve the business and the ordered products.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// DispatchUoW manages transactions across order and courier aggregates,
	// plus the business catalog needed to locate the pickup point.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		CatalogRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// AssignmentUoW manages transactions across order and courier aggregates.
	// Used for commands that coordinate changes between both.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// PaymentUoW manages transactions for payment processing, which updates
	// the order and appends to the ledger atomically.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
