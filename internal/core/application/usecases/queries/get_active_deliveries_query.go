package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery lists every non-terminal delivery with its
// driver and vehicle references for the coordination board.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a parameterless active-deliveries
// query.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// ActiveDeliveryResponse is one row of the coordination board.
type ActiveDeliveryResponse struct {
	ID              int64
	OrderID         int64
	TrackingRef     string
	Status          string
	DriverID        *int64
	DriverName      *string
	VehicleID       *int64
	VehicleModel    *string
	RescheduleCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
