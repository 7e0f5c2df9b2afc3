package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the read contract for fleet vehicles. The
// engine never mutates vehicles; it only needs them for assignment and
// conflict messages.
type VehicleRepository interface {
	// Get retrieves a vehicle by ID, or an ObjectNotFound error.
	Get(ctx context.Context, id int64) (*vehicle.Vehicle, error)
}

// DriverRepository defines the read contract for delivery drivers,
// sourced from the staff directory collaborator's user records.
type DriverRepository interface {
	// Get retrieves a driver reference by ID, or an ObjectNotFound error.
	Get(ctx context.Context, id int64) (vehicle.DriverRef, error)
}
