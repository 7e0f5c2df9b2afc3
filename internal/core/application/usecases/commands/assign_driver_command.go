package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand binds a driver and a vehicle to an order's delivery.
// A nil driver unassigns while keeping the vehicle reference; that path
// skips the conflict check entirely.
type AssignDriverCommand struct {
	orderID   int64
	driverID  *int64
	vehicleID int64
	actor     kernel.ActorContext

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a validated assignment command.
func NewAssignDriverCommand(
	orderID int64,
	driverID *int64,
	vehicleID int64,
	actor kernel.ActorContext,
) (AssignDriverCommand, error) {
	if orderID <= 0 {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if driverID != nil && *driverID <= 0 {
		return AssignDriverCommand{}, errs.NewValueIsInvalidError("driverId")
	}
	if vehicleID <= 0 {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("vehicleId")
	}
	if err := actor.Role.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID:   orderID,
		driverID:  driverID,
		vehicleID: vehicleID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose delivery receives the assignment.
func (c *AssignDriverCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the requested driver, nil for unassignment.
func (c *AssignDriverCommand) DriverID() *int64 {
	return c.driverID
}

// VehicleID returns the requested vehicle.
func (c *AssignDriverCommand) VehicleID() int64 {
	return c.vehicleID
}

// Actor returns who requested the assignment.
func (c *AssignDriverCommand) Actor() kernel.ActorContext {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}
