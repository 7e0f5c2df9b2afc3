package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRescheduleDeliveryCommandIsNotConstructed = errors.New(
	"RescheduleDeliveryCommand must be created via NewRescheduleDeliveryCommand constructor",
)

// RescheduleDeliveryCommand records another delivery attempt for an
// order's active delivery. Rescheduling only bumps the attempt counter
// and timestamp; driver, vehicle, and status stay as they are.
type RescheduleDeliveryCommand struct {
	orderID int64
	actor   kernel.ActorContext

	guard guard.ConstructorGuard
}

// NewRescheduleDeliveryCommand creates a validated reschedule command.
func NewRescheduleDeliveryCommand(orderID int64, actor kernel.ActorContext) (RescheduleDeliveryCommand, error) {
	if orderID <= 0 {
		return RescheduleDeliveryCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if err := actor.Role.Validate(); err != nil {
		return RescheduleDeliveryCommand{}, err
	}

	return RescheduleDeliveryCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose delivery is rescheduled.
func (c *RescheduleDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns who requested the reschedule.
func (c *RescheduleDeliveryCommand) Actor() kernel.ActorContext {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *RescheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleDeliveryCommandIsNotConstructed)
}
