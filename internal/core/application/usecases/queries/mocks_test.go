package queries_test

import (
	"context"
	"testing"
	"time"

	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"

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

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

// orderFixture builds a pendiente order with the given id, customer phone
// and creation time, placed in the covered Medellín zone.
func orderFixture(t *testing.T, id int, phone string, createdAt time.Time) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer(
		"Laura Gómez", order.NormalizePhone(phone), "Cl 10 #43E-25",
		mustGeoPoint(t, 6.2100, -75.5700),
	)
	require.NoError(t, err)

	businessRef, err := order.NewBusinessRef(1, "Arepas El Paisa", mustGeoPoint(t, 6.2088, -75.5704))
	require.NoError(t, err)

	item, err := order.NewLineItem(3, "Bandeja paisa", 1, 5000, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		id, customer, businessRef, []order.LineItem{item},
		order.MethodCash, 0, 0.14, 30, createdAt,
	)
	require.NoError(t, err)
	return o
}

func courierFixture(t *testing.T, id int, lat, lng float64) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(
		id, "Courier", "3000000000", mustGeoPoint(t, lat, lng), "centro", "moto", 4.0,
	)
	require.NoError(t, err)
	return c
}
