package queries_test

import (
	"testing"

	"domicilios/internal/core/application/usecases/queries"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func TestGetNearbyCouriersQueryHandler_Handle_RanksWithinRadius(t *testing.T) {
	ctx := t.Context()

	// Distances from (6.2088, -75.5704): roughly 0.3, 0.9 and 5 km north.
	near := courierFixture(t, 1, 6.2115, -75.5704)
	mid := courierFixture(t, 2, 6.2169, -75.5704)
	far := courierFixture(t, 3, 6.2538, -75.5704)

	repo := new(MockCourierRepository)
	repo.On("GetAllAvailable", ctx).Return([]*courier.Courier{far, mid, near}, nil).Once()

	query, err := queries.NewGetNearbyCouriersQuery(6.2088, -75.5704, 1.0)
	require.NoError(t, err)

	handler := queries.NewGetNearbyCouriersQueryHandler(repo)
	got, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].Courier.ID())
	require.Equal(t, 2, got[1].Courier.ID())
	require.Less(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestGetNearbyCouriersQueryHandler_Handle_DefaultRadius(t *testing.T) {
	ctx := t.Context()

	repo := new(MockCourierRepository)
	repo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once()

	query, err := queries.NewGetNearbyCouriersQuery(6.2088, -75.5704, 0)
	require.NoError(t, err)
	require.InDelta(t, services.DefaultMaxDistanceKm, query.MaxDistanceKm(), 0.001)

	handler := queries.NewGetNearbyCouriersQueryHandler(repo)
	got, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Empty(t, got)
}

func TestNewGetNearbyCouriersQuery_InvalidCoordinates(t *testing.T) {
	_, err := queries.NewGetNearbyCouriersQuery(91, 0, 1)
	require.Error(t, err)
}

func TestGetCouriersQueryHandler_Handle_OnlyAvailable(t *testing.T) {
	ctx := t.Context()

	free := courierFixture(t, 1, 6.21, -75.57)
	busy := courierFixture(t, 2, 6.21, -75.57)
	require.NoError(t, busy.Take(7))

	repo := new(MockCourierRepository)
	repo.On("GetAll", ctx).Return([]*courier.Courier{free, busy}, nil).Once()
	repo.On("GetAllAvailable", ctx).Return([]*courier.Courier{free}, nil).Once()

	handler := queries.NewGetCouriersQueryHandler(repo)

	all, err := handler.Handle(ctx, queries.NewGetCouriersQuery(false))
	require.NoError(t, err)
	require.Len(t, all, 2)

	available, err := handler.Handle(ctx, queries.NewGetCouriersQuery(true))
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, 1, available[0].ID())
}
