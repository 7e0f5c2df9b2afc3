// Package vehicle contains the fleet entities the delivery coordinator
// assigns to deliveries: the Vehicle itself and the DriverRef read model
// supplied by the staff directory.
package vehicle

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was
	// not created through RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via RestoreVehicle")
)

// Status represents the operational state of a fleet vehicle.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available vehicles can be assigned to deliveries.
	Available

	// InUse vehicles are committed to at least one active delivery.
	InUse

	// Maintenance vehicles are out of rotation.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Available:   "Available",
		InUse:       "In Use",
		Maintenance: "Maintenance",
	}
}

// ParseStatus converts a persisted vehicle status string.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid vehicle status", s))
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Vehicle is a fleet vehicle. The double-booking invariant (at most one
// active delivery per vehicle under a distinct driver) is enforced by the
// assignment conflict check, not by the entity itself.
type Vehicle struct {
	id          int64
	model       string
	plateNumber string
	status      Status

	isConstructed bool
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id int64, model, plateNumber string, status Status) (*Vehicle, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("vehicleId")
	}
	if model == "" {
		return nil, errs.NewValueIsRequiredError("model")
	}
	if _, ok := getStatusStrings()[status]; !ok {
		return nil, errs.NewValueIsInvalidError("status")
	}

	return &Vehicle{
		id:            id,
		model:         model,
		plateNumber:   plateNumber,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() int64 {
	return v.id
}

// Model returns the vehicle model name used in conflict messages.
func (v *Vehicle) Model() string {
	return v.model
}

// PlateNumber returns the registration plate.
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// Status returns the operational status.
func (v *Vehicle) Status() Status {
	return v.status
}

// DriverRef is the read model of a delivery driver, sourced from the staff
// directory collaborator. The engine never mutates driver records; it only
// needs the name for conflict messages and the phone for coordination.
type DriverRef struct {
	ID    int64
	Name  string
	Phone string
}
