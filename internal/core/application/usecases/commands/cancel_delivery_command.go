package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand terminates an order's active delivery with a
// mandatory reason. Cancelling the delivery does not change the order
// status; the order stays Ready until a new delivery is arranged or the
// order is completed another way.
type CancelDeliveryCommand struct {
	orderID int64
	reason  string
	actor   kernel.ActorContext

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a validated cancellation command.
func NewCancelDeliveryCommand(
	orderID int64,
	reason string,
	actor kernel.ActorContext,
) (CancelDeliveryCommand, error) {
	if orderID <= 0 {
		return CancelDeliveryCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if reason == "" {
		return CancelDeliveryCommand{}, errs.NewValueIsRequiredError("reason")
	}
	if err := actor.Role.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return CancelDeliveryCommand{
		orderID: orderID,
		reason:  reason,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose delivery is cancelled.
func (c *CancelDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the mandatory cancellation reason.
func (c *CancelDeliveryCommand) Reason() string {
	return c.reason
}

// Actor returns who requested the cancellation.
func (c *CancelDeliveryCommand) Actor() kernel.ActorContext {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}
