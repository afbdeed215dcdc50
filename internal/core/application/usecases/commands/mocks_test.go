package commands_test

import (
	"context"
	"testing"
	"time"

	"domicilios/internal/core/application/usecases/commands"
	"domicilios/internal/core/domain/model/business"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/domain/model/product"
	"domicilios/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstPending(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id int) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockBusinessRepository struct{ mock.Mock }

func (m *MockBusinessRepository) Get(ctx context.Context, id int) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessRepository) GetAll(ctx context.Context) ([]*business.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*business.Business), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByBusiness(ctx context.Context, businessID int) ([]*product.Product, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, r *payment.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetAll(ctx context.Context) ([]*payment.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Record), args.Error(1)
}

func (m *MockPaymentRepository) GetLastByOrder(ctx context.Context, orderID int) (*payment.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Record), args.Error(1)
}

func (m *MockPaymentRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUnitOfWork implements every narrow unit of work interface the command
// handlers depend on, so each test wires only the repositories it needs.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUnitOfWork) BusinessRepository() ports.BusinessRepository {
	args := m.Called()
	return args.Get(0).(ports.BusinessRepository)
}

func (m *MockUnitOfWork) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUnitOfWork) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyNewOrder(o *order.Order) {
	m.Called(o)
}

func (m *MockNotifier) NotifyPaymentConfirmed(o *order.Order) {
	m.Called(o)
}

// Shared fixtures: a business in the Medellín service area and a customer a
// couple of blocks away.

func testBusinessLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	loc, err := kernel.NewGeoPoint(6.2088, -75.5704)
	require.NoError(t, err)
	return loc
}

func testCustomerLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	loc, err := kernel.NewGeoPoint(6.2100, -75.5700)
	require.NoError(t, err)
	return loc
}

func testBusiness(t *testing.T) *business.Business {
	t.Helper()
	b, err := business.RestoreBusiness(
		1, "Arepas El Paisa", "comida", "Cra 43A #5-10",
		testBusinessLocation(t), "3011234567", 4.5, true, 30,
	)
	require.NoError(t, err)
	return b
}

func testProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		3, 1, "Bandeja paisa", 5000, "Plato tradicional", "comida", true, "",
	)
	require.NoError(t, err)
	return p
}

func testCourier(t *testing.T, id int) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(
		id, "Juan Valdez", "3009876543", testBusinessLocation(t),
		"laureles", "moto", 4.8,
	)
	require.NoError(t, err)
	return c
}

func testPendingOrder(t *testing.T, id int) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer(
		"Laura Gómez", "3001112233", "Cl 10 #43E-25", testCustomerLocation(t),
	)
	require.NoError(t, err)

	businessRef, err := order.NewBusinessRef(1, "Arepas El Paisa", testBusinessLocation(t))
	require.NoError(t, err)

	item, err := order.NewLineItem(3, "Bandeja paisa", 2, 5000, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		id, customer, businessRef, []order.LineItem{item},
		order.MethodCash, 1000, 0.14, 30, time.Now(),
	)
	require.NoError(t, err)
	return o
}
