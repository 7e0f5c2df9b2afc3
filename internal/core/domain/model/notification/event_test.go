package notification_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFor(t *testing.T) {
	t.Run("ready wording follows the delivery method", func(t *testing.T) {
		assert.Equal(t, "Your order is ready for pickup.",
			notification.MessageFor(notification.EventOrderReady, "Pick Up"))
		assert.Equal(t, "Your order is ready for delivery.",
			notification.MessageFor(notification.EventOrderReady, "Standard Delivery"))
	})

	t.Run("delivered thanks the customer", func(t *testing.T) {
		assert.Equal(t, "Your order has been delivered. Thank you!",
			notification.MessageFor(notification.EventOrderDelivered, "Standard Delivery"))
	})

	t.Run("unknown events still produce a message", func(t *testing.T) {
		msg := notification.MessageFor(notification.EventType("mystery"), "")
		assert.NotEmpty(t, msg)
	})
}

func TestEventTypeForStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected notification.EventType
		ok       bool
	}{
		{"Processing", notification.EventOrderProcessing, true},
		{"Ready", notification.EventOrderReady, true},
		{"Rejected", notification.EventOrderRejected, true},
		{"Completed", notification.EventOrderCompleted, true},
		{"Waiting Payment", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			eventType, ok := notification.EventTypeForStatus(tt.status)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, eventType)
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Now()

	t.Run("valid row", func(t *testing.T) {
		n, err := notification.New(1001, notification.AudienceAdmin,
			notification.EventOrderReady, "Order #1001 is ready for fulfillment.", now)
		require.NoError(t, err)
		assert.Equal(t, int64(1001), n.OrderID)
		assert.False(t, n.Read)
		assert.NotEmpty(t, n.ID)
	})

	t.Run("order is required", func(t *testing.T) {
		_, err := notification.New(0, notification.AudienceAdmin,
			notification.EventOrderReady, "x", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("message is required", func(t *testing.T) {
		_, err := notification.New(1, notification.AudienceAdmin,
			notification.EventOrderReady, "", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
