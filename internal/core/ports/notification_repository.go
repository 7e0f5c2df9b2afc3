package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// append-only notification audit rows. Writes happen after the owning
// transition commits, outside its transaction, and each write is
// independent of the others.
type NotificationRepository interface {
	// Add persists one notification row.
	Add(ctx context.Context, row *notification.Notification) error
}
