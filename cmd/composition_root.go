package cmd

import (
	"fmt"
	"log/slog"

	"domicilios/internal/adapters/in/http"
	"domicilios/internal/adapters/out/jsonstore"
	"domicilios/internal/adapters/out/notify"
	"domicilios/internal/adapters/out/postgres"
	"domicilios/internal/core/application/usecases/commands"
	"domicilios/internal/core/application/usecases/queries"
	"domicilios/internal/core/ports"
)

// CompositionRoot wires the selected storage backend, the notifier and the
// use case handlers together.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger

	// Standalone (auto-commit) repositories backing the query handlers.
	orders   ports.OrderRepository
	couriers ports.CourierRepository
	payments ports.PaymentRepository
}

// NewCompositionRoot builds the object graph for the configured backend.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	root := CompositionRoot{
		notifier: notify.NewSMSNotifier(config.SMSGatewayURL, logger),
		logger:   logger,
	}

	switch config.Storage {
	case StorageJSON, "":
		store, err := jsonstore.NewStore(config.DataDir)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("open json store: %w", err)
		}
		root.uowFactory = jsonstore.NewUnitOfWorkFactory(store)
		root.orders = jsonstore.NewOrderRepository(store)
		root.couriers = jsonstore.NewCourierRepository(store)
		root.payments = jsonstore.NewPaymentRepository(store)

	case StoragePostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode,
		)
		db, err := postgres.Open(dsn)
		if err != nil {
			return CompositionRoot{}, err
		}
		root.uowFactory = postgres.NewUnitOfWorkFactory(db)
		root.orders = postgres.NewOrderRepository(db)
		root.couriers = postgres.NewCourierRepository(db)
		root.payments = postgres.NewPaymentRepository(db)

	default:
		return CompositionRoot{}, fmt.Errorf("unknown storage backend %q", config.Storage)
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersByPhoneQueryHandler() queries.GetOrdersByPhoneQueryHandler {
	return queries.NewGetOrdersByPhoneQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.couriers)
}

func (c *CompositionRoot) CreateGetNearbyCouriersQueryHandler() queries.GetNearbyCouriersQueryHandler {
	return queries.NewGetNearbyCouriersQueryHandler(c.couriers)
}

func (c *CompositionRoot) CreateGetPaymentHistoryQueryHandler() queries.GetPaymentHistoryQueryHandler {
	return queries.NewGetPaymentHistoryQueryHandler(c.payments)
}

func (c *CompositionRoot) CreateGetOrderPaymentQueryHandler() queries.GetOrderPaymentQueryHandler {
	return queries.NewGetOrderPaymentQueryHandler(c.orders, c.payments)
}

// CreateHTTPHandlers bundles everything the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AssignCourier:     c.CreateAssignCourierCommandHandler(),
		CompleteOrder:     c.CreateCompleteOrderCommandHandler(),
		ProcessPayment:    c.CreateProcessPaymentCommandHandler(),

		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrdersByPhone:  c.CreateGetOrdersByPhoneQueryHandler(),
		GetCouriers:       c.CreateGetCouriersQueryHandler(),
		GetNearbyCouriers: c.CreateGetNearbyCouriersQueryHandler(),
		GetPaymentHistory: c.CreateGetPaymentHistoryQueryHandler(),
		GetOrderPayment:   c.CreateGetOrderPaymentQueryHandler(),
	}
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
