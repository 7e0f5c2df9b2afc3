package commands

import (
	"errors"

	"gorm.io/datatypes"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand records proof of delivery. It finalizes the
// delivery record and completes the order in the same transaction.
type MarkDeliveredCommand struct {
	orderID int64
	details datatypes.JSON
	actor   kernel.ActorContext

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a validated proof-of-delivery command.
// details is free-form JSON (recipient, signature reference, notes) and
// may be nil.
func NewMarkDeliveredCommand(
	orderID int64,
	details datatypes.JSON,
	actor kernel.ActorContext,
) (MarkDeliveredCommand, error) {
	if orderID <= 0 {
		return MarkDeliveredCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if err := actor.Role.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		orderID: orderID,
		details: details,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the delivered order.
func (c *MarkDeliveredCommand) OrderID() int64 {
	return c.orderID
}

// Details returns the free-form proof-of-delivery payload.
func (c *MarkDeliveredCommand) Details() datatypes.JSON {
	return c.details
}

// Actor returns who recorded the delivery.
func (c *MarkDeliveredCommand) Actor() kernel.ActorContext {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}
