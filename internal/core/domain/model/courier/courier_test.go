package courier_test

import (
	"errors"
	"testing"

	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourier(t *testing.T) *courier.Courier {
	t.Helper()

	loc, err := kernel.NewGeoPoint(6.2090, -75.5704)
	require.NoError(t, err)

	c, err := courier.NewCourier(1, "Juan Valdez", "3009876543", loc, "laureles", "moto", 4.8)
	require.NoError(t, err)
	return c
}

func TestNewCourier_StartsAvailable(t *testing.T) {
	c := newCourier(t)

	assert.True(t, c.Available())
	assert.Nil(t, c.CurrentOrderID())
	assert.Equal(t, 0, c.TotalDeliveries())
}

func TestTake_BindsOrderAndBlocksSecondTake(t *testing.T) {
	c := newCourier(t)

	require.NoError(t, c.Take(10))
	assert.False(t, c.Available())
	require.NotNil(t, c.CurrentOrderID())
	assert.Equal(t, 10, *c.CurrentOrderID())

	err := c.Take(11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidState))
}

func TestTake_RejectsInvalidOrderID(t *testing.T) {
	c := newCourier(t)

	err := c.Take(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
}

func TestRelease_CountsDelivery(t *testing.T) {
	c := newCourier(t)
	require.NoError(t, c.Take(10))

	require.NoError(t, c.Release())
	assert.True(t, c.Available())
	assert.Nil(t, c.CurrentOrderID())
	assert.Equal(t, 1, c.TotalDeliveries())

	err := c.Release()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidState))
}

func TestRelocate(t *testing.T) {
	c := newCourier(t)

	next, err := kernel.NewGeoPoint(6.2500, -75.5600)
	require.NoError(t, err)
	require.NoError(t, c.Relocate(next))

	assert.InDelta(t, 6.2500, c.Location().Lat(), 0.0001)
}
