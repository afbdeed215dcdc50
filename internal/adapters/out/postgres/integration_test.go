package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	pgadapter "domicilios/internal/adapters/out/postgres"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/ports"
	"domicilios/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresIntegrationTestSuite runs the repository and unit of work tests
// against a real PostgreSQL instance.
type PostgresIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (s *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(pgadapter.Migrate(db))
	s.factory = pgadapter.NewUnitOfWorkFactory(db)
}

func (s *PostgresIntegrationTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, couriers, businesses, products, payments").Error
	s.Require().NoError(err)
}

func (s *PostgresIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresIntegrationTestSuite) geoPoint(lat, lng float64) kernel.GeoPoint {
	p, err := kernel.NewGeoPoint(lat, lng)
	s.Require().NoError(err)
	return p
}

func (s *PostgresIntegrationTestSuite) newOrder(id int) *order.Order {
	customer, err := order.NewCustomer(
		"Laura Gómez", "3001112233", "Cl 10 #43E-25", s.geoPoint(6.2100, -75.5700),
	)
	s.Require().NoError(err)

	businessRef, err := order.NewBusinessRef(1, "Arepas El Paisa", s.geoPoint(6.2088, -75.5704))
	s.Require().NoError(err)

	item, err := order.NewLineItem(3, "Bandeja paisa", 2, 5000, "sin arroz")
	s.Require().NoError(err)

	o, err := order.NewOrder(
		id, customer, businessRef, []order.LineItem{item},
		order.MethodCash, 1000, 0.14, 30, time.Now().UTC(),
	)
	s.Require().NoError(err)
	return o
}

func (s *PostgresIntegrationTestSuite) newCourier(id int) *courier.Courier {
	c, err := courier.NewCourier(
		id, "Juan Valdez", "3009876543", s.geoPoint(6.2090, -75.5704),
		"laureles", "moto", 4.8,
	)
	s.Require().NoError(err)
	return c
}

func (s *PostgresIntegrationTestSuite) TestOrderRepository_AddGetRoundtrip() {
	ctx := context.Background()
	repo := pgadapter.NewOrderRepository(s.db)

	original := s.newOrder(1)
	s.Require().NoError(repo.Add(ctx, original))

	restored, err := repo.Get(ctx, 1)
	s.Require().NoError(err)

	s.Equal(original.ID(), restored.ID())
	s.Equal(original.Customer().Phone(), restored.Customer().Phone())
	s.Equal(original.Business().Name(), restored.Business().Name())
	s.InDelta(original.Total(), restored.Total(), 0.001)
	s.Equal(order.StatusPending, restored.Status())
	s.Require().Len(restored.Items(), 1)
	s.Equal("sin arroz", restored.Items()[0].Notes())
	s.Require().Len(restored.StatusHistory(), 1)
}

func (s *PostgresIntegrationTestSuite) TestOrderRepository_UpdateMissingIDIsNotFound() {
	repo := pgadapter.NewOrderRepository(s.db)

	err := repo.Update(context.Background(), s.newOrder(99))
	s.Require().Error(err)
	s.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (s *PostgresIntegrationTestSuite) TestOrderRepository_NextIDSkipsGaps() {
	ctx := context.Background()
	repo := pgadapter.NewOrderRepository(s.db)

	next, err := repo.NextID(ctx)
	s.Require().NoError(err)
	s.Equal(1, next)

	s.Require().NoError(repo.Add(ctx, s.newOrder(5)))

	next, err = repo.NextID(ctx)
	s.Require().NoError(err)
	s.Equal(6, next)
}

func (s *PostgresIntegrationTestSuite) TestOrderRepository_GetFirstPendingSkipsActive() {
	ctx := context.Background()
	repo := pgadapter.NewOrderRepository(s.db)

	first := s.newOrder(1)
	s.Require().NoError(first.ChangeStatus(order.StatusPreparing, time.Now().UTC()))
	s.Require().NoError(repo.Add(ctx, first))
	s.Require().NoError(repo.Add(ctx, s.newOrder(2)))

	pending, err := repo.GetFirstPending(ctx)
	s.Require().NoError(err)
	s.Equal(2, pending.ID())
}

func (s *PostgresIntegrationTestSuite) TestCourierRepository_AvailabilityFilter() {
	ctx := context.Background()
	repo := pgadapter.NewCourierRepository(s.db)

	free := s.newCourier(1)
	busy := s.newCourier(2)
	s.Require().NoError(busy.Take(10))

	s.Require().NoError(repo.Add(ctx, free))
	s.Require().NoError(repo.Add(ctx, busy))

	available, err := repo.GetAllAvailable(ctx)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(1, available[0].ID())

	restored, err := repo.Get(ctx, 2)
	s.Require().NoError(err)
	s.False(restored.Available())
	s.Require().NotNil(restored.CurrentOrderID())
	s.Equal(10, *restored.CurrentOrderID())
}

func (s *PostgresIntegrationTestSuite) TestPaymentRepository_Ledger() {
	ctx := context.Background()
	repo := pgadapter.NewPaymentRepository(s.db)
	now := time.Now().UTC()

	next, err := repo.NextID(ctx)
	s.Require().NoError(err)
	s.Equal(1, next)

	first, err := payment.NewRecord(1, 7, 11000, 1000, order.MethodCash, order.PaymentPending, now)
	s.Require().NoError(err)
	second, err := payment.NewRecord(2, 7, 11000, 1000, order.MethodCard, order.PaymentPaid, now)
	s.Require().NoError(err)

	s.Require().NoError(repo.Add(ctx, first))
	s.Require().NoError(repo.Add(ctx, second))

	next, err = repo.NextID(ctx)
	s.Require().NoError(err)
	s.Equal(3, next)

	last, err := repo.GetLastByOrder(ctx, 7)
	s.Require().NoError(err)
	s.Equal(2, last.ID())
	s.Equal(order.PaymentPaid, last.Status())

	_, err = repo.GetLastByOrder(ctx, 42)
	s.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_CommitPersistsBothAggregates() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, s.newOrder(1)))
	s.Require().NoError(uow.CourierRepository().Add(ctx, s.newCourier(1)))
	s.Require().NoError(uow.Commit(ctx))

	_, err := pgadapter.NewOrderRepository(s.db).Get(ctx, 1)
	s.Require().NoError(err)
	_, err = pgadapter.NewCourierRepository(s.db).Get(ctx, 1)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, s.newOrder(1)))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := pgadapter.NewOrderRepository(s.db).Get(ctx, 1)
	s.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_CommitWithoutBeginFails() {
	uow := s.factory.Create()
	s.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	s.ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func TestPostgresIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(PostgresIntegrationTestSuite))
}
