// Package eventhandlers fans committed order events out to the
// notification channels: dashboard rows for staff and customers, and SMS.
package eventhandlers

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

// Dispatcher implements ports.EventDispatcher. Each event produces up to
// three deliveries: an admin row, a customer row (when the event has a
// customer), and an SMS (when a phone number is known). The three are
// independent; one failing never suppresses the others, and no failure
// propagates to the caller. By the time Dispatch runs, the state change is
// already committed.
type Dispatcher struct {
	notifications ports.NotificationRepository
	sms           ports.SMSSender
	logger        *slog.Logger
}

// NewDispatcher creates a dispatcher over the given channels.
func NewDispatcher(
	notifications ports.NotificationRepository,
	sms ports.SMSSender,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{notifications: notifications, sms: sms, logger: logger}
}

// Dispatch fans out every event in the list.
func (d *Dispatcher) Dispatch(ctx context.Context, events []notification.Event) {
	for _, event := range events {
		d.dispatchOne(ctx, event)
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, event notification.Event) {
	now := time.Now()

	adminRow, err := notification.New(event.OrderID, notification.AudienceAdmin,
		event.Type, notification.AdminMessageFor(event.Type, event.OrderID), now)
	if err == nil {
		err = d.notifications.Add(ctx, adminRow)
	}
	if err != nil {
		d.logger.Warn("admin notification failed",
			"orderId", event.OrderID, "event", string(event.Type), "error", err)
	}

	if event.CustomerID > 0 {
		customerRow, rowErr := notification.New(event.OrderID, notification.AudienceCustomer,
			event.Type, notification.MessageFor(event.Type, event.DeliveryMethod), now)
		if rowErr == nil {
			rowErr = d.notifications.Add(ctx, customerRow)
		}
		if rowErr != nil {
			d.logger.Warn("customer notification failed",
				"orderId", event.OrderID, "event", string(event.Type), "error", rowErr)
		}
	}

	if event.CustomerPhone != "" {
		message := notification.MessageFor(event.Type, event.DeliveryMethod)
		if smsErr := d.sms.Send(ctx, event.CustomerPhone, message); smsErr != nil {
			d.logger.Warn("sms send failed",
				"orderId", event.OrderID, "event", string(event.Type), "error", smsErr)
		}
	}
}
