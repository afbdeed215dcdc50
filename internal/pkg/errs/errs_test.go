package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"domicilios/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 7)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, 7, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 7", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("row scan failed")
		err := errs.NewObjectNotFoundErrorWithCause("courier", 3, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: courier 3 (cause: row scan failed)", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("wrapped_classification_survives", func(t *testing.T) {
		err := fmt.Errorf("dispatch failed: %w", errs.NewObjectNotFoundError("order", 12))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.NotErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewInvalidStateError("order already paid")

		assert.Equal(t, "invalid state: order already paid", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("status is entregado")
		err := errs.NewInvalidStateErrorWithCause("order cannot be assigned", cause)

		assert.Equal(t, "invalid state: order cannot be assigned (cause: status is entregado)", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("payment_method")

		assert.Equal(t, "value is invalid: payment_method", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("must be efectivo or tarjeta")
		err := errs.NewValueIsInvalidErrorWithCause("payment_method", cause)

		assert.Equal(t, "value is invalid: payment_method (cause: must be efectivo or tarjeta)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customer_name")

	assert.Equal(t, "value is required: customer_name", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("lat", 95.0, -90.0, 90.0)

	assert.Equal(t, "value is out of range: lat 95 not in [-90, 90]", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
