package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery
// records. "Active" means status not in Delivered/Cancelled; the
// at-most-one-active-delivery-per-order invariant is maintained by always
// going through GetByOrderID before creating.
type DeliveryRepository interface {
	// Add persists a new delivery record and marks the aggregate with its
	// storage-assigned identifier.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the order's most recent delivery record,
	// terminal or not, or an ObjectNotFound error when none exists.
	// Callers distinguish "create one" (not found) from "leave it alone"
	// (terminal) from "advance it" (active).
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)

	// GetActiveByVehicleID retrieves every active delivery referencing
	// the vehicle, excluding the one belonging to excludeOrderID. Feeds
	// the double-booking conflict check.
	GetActiveByVehicleID(ctx context.Context, vehicleID, excludeOrderID int64) ([]*delivery.Delivery, error)
}
