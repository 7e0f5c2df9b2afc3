package delivery_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restored(t *testing.T, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		1, 1001, uuid.New(), status,
		nil, nil, nil, "", nil, nil, 0, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected delivery.Status
		wantErr  bool
	}{
		{"Pending", delivery.Pending, false},
		{"Preparing", delivery.Preparing, false},
		{"Out for Delivery", delivery.OutForDelivery, false},
		{"Delivered", delivery.Delivered, false},
		{"Cancelled", delivery.Cancelled, false},
		// legacy alias mapped on read
		{"On the Way", delivery.OutForDelivery, false},
		{"Returned", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := delivery.ParseStatus(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestNewDelivery(t *testing.T) {
	now := time.Now()

	t.Run("created with tracking reference", func(t *testing.T) {
		d, err := delivery.NewDelivery(1001, delivery.OutForDelivery, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1001), d.OrderID())
		assert.Equal(t, delivery.OutForDelivery, d.Status())
		assert.NotEqual(t, uuid.Nil, d.TrackingRef())
		assert.True(t, d.IsActive())
	})

	t.Run("order is required", func(t *testing.T) {
		_, err := delivery.NewDelivery(0, delivery.Pending, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("cannot be born terminal", func(t *testing.T) {
		_, err := delivery.NewDelivery(1001, delivery.Cancelled, now)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestDelivery_MarkOutForDelivery(t *testing.T) {
	now := time.Now()

	for _, from := range []delivery.Status{delivery.Pending, delivery.Preparing, delivery.OutForDelivery} {
		t.Run("advances from "+from.String(), func(t *testing.T) {
			d := restored(t, from)
			require.NoError(t, d.MarkOutForDelivery(now))
			assert.Equal(t, delivery.OutForDelivery, d.Status())
		})
	}

	for _, from := range []delivery.Status{delivery.Delivered, delivery.Cancelled} {
		t.Run("terminal "+from.String()+" is untouched", func(t *testing.T) {
			d := restored(t, from)
			require.ErrorIs(t, d.MarkOutForDelivery(now), errs.ErrInvalidState)
			assert.Equal(t, from, d.Status())
		})
	}
}

func TestDelivery_AssignDriver(t *testing.T) {
	now := time.Now()
	driverID := int64(3)

	t.Run("assignment records driver and vehicle", func(t *testing.T) {
		d := restored(t, delivery.Pending)

		require.NoError(t, d.AssignDriver(&driverID, 7, now))
		require.NotNil(t, d.DriverID())
		assert.Equal(t, driverID, *d.DriverID())
		require.NotNil(t, d.VehicleID())
		assert.Equal(t, int64(7), *d.VehicleID())
		assert.Equal(t, delivery.OutForDelivery, d.Status())
	})

	t.Run("unassignment clears the driver", func(t *testing.T) {
		d := restored(t, delivery.Pending)
		require.NoError(t, d.AssignDriver(&driverID, 7, now))

		require.NoError(t, d.AssignDriver(nil, 7, now))
		assert.Nil(t, d.DriverID())
	})

	t.Run("cancelled delivery rejects assignment", func(t *testing.T) {
		d := restored(t, delivery.Cancelled)
		require.ErrorIs(t, d.AssignDriver(&driverID, 7, now), errs.ErrInvalidState)
		assert.Equal(t, delivery.Cancelled, d.Status())
	})

	t.Run("vehicle is required", func(t *testing.T) {
		d := restored(t, delivery.Pending)
		require.ErrorIs(t, d.AssignDriver(&driverID, 0, now), errs.ErrValueIsRequired)
	})
}

func TestDelivery_Cancel(t *testing.T) {
	now := time.Now()

	t.Run("cancellation stamps metadata and is terminal", func(t *testing.T) {
		d := restored(t, delivery.OutForDelivery)

		require.NoError(t, d.Cancel("customer unreachable", 9, now))
		assert.Equal(t, delivery.Cancelled, d.Status())
		assert.Equal(t, "customer unreachable", d.CancellationReason())
		require.NotNil(t, d.CancelledBy())
		assert.Equal(t, int64(9), *d.CancelledBy())
		require.NotNil(t, d.CancelledAt())
		assert.False(t, d.IsActive())

		// terminal: no revival through any mutation
		require.ErrorIs(t, d.MarkOutForDelivery(now), errs.ErrInvalidState)
		driverID := int64(3)
		require.ErrorIs(t, d.AssignDriver(&driverID, 7, now), errs.ErrInvalidState)
		require.ErrorIs(t, d.Cancel("again", 9, now), errs.ErrInvalidState)
	})

	t.Run("reason is required", func(t *testing.T) {
		d := restored(t, delivery.OutForDelivery)
		require.ErrorIs(t, d.Cancel("", 9, now), errs.ErrValueIsRequired)
	})
}

func TestDelivery_Reschedule(t *testing.T) {
	now := time.Now()

	t.Run("reschedule increments count without touching status", func(t *testing.T) {
		d := restored(t, delivery.OutForDelivery)

		require.NoError(t, d.Reschedule(now))
		require.NoError(t, d.Reschedule(now))
		assert.Equal(t, 2, d.RescheduleCount())
		require.NotNil(t, d.LastRescheduledAt())
		assert.Equal(t, delivery.OutForDelivery, d.Status())
	})

	t.Run("terminal delivery cannot be rescheduled", func(t *testing.T) {
		d := restored(t, delivery.Delivered)
		require.ErrorIs(t, d.Reschedule(now), errs.ErrInvalidState)
	})
}

func TestDelivery_MarkDelivered(t *testing.T) {
	now := time.Now()

	t.Run("records proof payload and is terminal", func(t *testing.T) {
		d := restored(t, delivery.OutForDelivery)

		require.NoError(t, d.MarkDelivered([]byte(`{"signature":"JD"}`), now))
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.JSONEq(t, `{"signature":"JD"}`, string(d.Details()))

		require.ErrorIs(t, d.MarkDelivered(nil, now), errs.ErrInvalidState)
	})
}

func TestDelivery_Validate(t *testing.T) {
	var zero delivery.Delivery
	require.ErrorIs(t, zero.Validate(), delivery.ErrDeliveryIsNotConstructed)
}
