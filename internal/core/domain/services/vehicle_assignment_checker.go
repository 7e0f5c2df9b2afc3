package services

import (
	"fulfillment/internal/core/domain/model/delivery"
)

// VehicleAssignmentChecker is the domain service enforcing the vehicle
// double-booking invariant: a vehicle may be referenced by at most one
// active delivery under a distinct driver. Reuse of the same vehicle is
// allowed when the driver is unchanged or the prior delivery is terminal.
type VehicleAssignmentChecker struct{}

// NewVehicleAssignmentChecker creates a VehicleAssignmentChecker.
func NewVehicleAssignmentChecker() VehicleAssignmentChecker {
	return VehicleAssignmentChecker{}
}

// Check inspects the other active deliveries already referencing the
// requested vehicle. If any of them carries a driver different from
// requestedDriverID, the assignment would double-book the vehicle and the
// conflicting driver's ID is returned with conflict=true. The caller turns
// this into a Conflict error naming driver and vehicle; no row may be
// mutated once a conflict is found.
//
// Deliveries without a driver never conflict, and the caller must not run
// this check for unassignment (nil driver), which is always permitted.
func (VehicleAssignmentChecker) Check(
	requestedDriverID int64,
	otherActive []*delivery.Delivery,
) (conflictingDriverID int64, conflict bool) {
	for _, d := range otherActive {
		if !d.IsActive() {
			continue
		}

		holder := d.DriverID()
		if holder != nil && *holder != requestedDriverID {
			return *holder, true
		}
	}

	return 0, false
}
