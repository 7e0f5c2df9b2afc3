package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeDelivery(t *testing.T, orderID int64, status delivery.Status, driverID *int64, vehicleID int64) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		orderID, orderID, uuid.New(), status,
		driverID, &vehicleID, nil, "", nil, nil, 0, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestVehicleAssignmentChecker_Check(t *testing.T) {
	checker := services.NewVehicleAssignmentChecker()
	d3 := int64(3)
	d9 := int64(9)

	t.Run("different driver on active delivery conflicts", func(t *testing.T) {
		// vehicle V7 is out with driver D3 on order #2002
		others := []*delivery.Delivery{
			activeDelivery(t, 2002, delivery.OutForDelivery, &d3, 7),
		}

		conflictingDriverID, conflict := checker.Check(d9, others)
		assert.True(t, conflict)
		assert.Equal(t, d3, conflictingDriverID)
	})

	t.Run("same driver may reuse the vehicle", func(t *testing.T) {
		others := []*delivery.Delivery{
			activeDelivery(t, 2002, delivery.OutForDelivery, &d3, 7),
		}

		_, conflict := checker.Check(d3, others)
		assert.False(t, conflict)
	})

	t.Run("driverless active delivery does not conflict", func(t *testing.T) {
		others := []*delivery.Delivery{
			activeDelivery(t, 2002, delivery.Pending, nil, 7),
		}

		_, conflict := checker.Check(d9, others)
		assert.False(t, conflict)
	})

	t.Run("terminal delivery releases the vehicle", func(t *testing.T) {
		others := []*delivery.Delivery{
			activeDelivery(t, 2002, delivery.Delivered, &d3, 7),
			activeDelivery(t, 2004, delivery.Cancelled, &d3, 7),
		}

		_, conflict := checker.Check(d9, others)
		assert.False(t, conflict)
	})

	t.Run("no other deliveries", func(t *testing.T) {
		_, conflict := checker.Check(d9, nil)
		assert.False(t, conflict)
	})
}
