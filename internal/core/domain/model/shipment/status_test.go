package shipment_test

import (
	"testing"

	"pharmaledger/internal/core/domain/model/shipment"
	"pharmaledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	status, err := shipment.StatusFromString("in-transit")
	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, status)

	status, err = shipment.StatusFromString("delivered")
	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, status)

	_, err = shipment.StatusFromString("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = shipment.StatusFromString("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "in-transit", shipment.InTransit.String())
	assert.Equal(t, "delivered", shipment.Delivered.String())
	assert.Equal(t, "unknown", shipment.UnknownStatus.String())
	assert.Equal(t, "unknown", shipment.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, shipment.InTransit.Validate())
	require.NoError(t, shipment.Delivered.Validate())
	require.Error(t, shipment.UnknownStatus.Validate())
	require.Error(t, shipment.Status(42).Validate())
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("in_transit_delivers", func(t *testing.T) {
		next, err := shipment.InTransit.Deliver()
		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, next)
	})

	t.Run("delivered_is_final", func(t *testing.T) {
		_, err := shipment.Delivered.Deliver()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_cannot_deliver", func(t *testing.T) {
		_, err := shipment.UnknownStatus.Deliver()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
