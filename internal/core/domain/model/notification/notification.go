package notification

import (
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// Audience identifies who a notification row addresses.
type Audience string

const (
	// AudienceAdmin rows feed the staff dashboard.
	AudienceAdmin Audience = "admin"

	// AudienceCustomer rows feed the customer's order page.
	AudienceCustomer Audience = "customer"
)

// Notification is an append-only audit record of a state change. Rows are
// written after the owning transition commits and are never mutated except
// to mark them read.
type Notification struct {
	ID        uuid.UUID
	OrderID   int64
	Audience  Audience
	EventType EventType
	Message   string
	Read      bool
	CreatedAt time.Time
}

// New creates a notification row for an order event.
func New(orderID int64, audience Audience, eventType EventType, message string, now time.Time) (*Notification, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		ID:        uuid.New(),
		OrderID:   orderID,
		Audience:  audience,
		EventType: eventType,
		Message:   message,
		CreatedAt: now,
	}, nil
}
