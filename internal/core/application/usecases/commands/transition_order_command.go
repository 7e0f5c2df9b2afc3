package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order to a target status. This is the
// single entry point for order lifecycle changes: payment approval
// (Waiting Payment -> Processing), fulfillment (-> Ready, which deducts
// inventory and creates the delivery record), rejection, and pickup
// completion all run through it.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(1001, order.Ready, "", actor)
//	if err != nil {
//	    // invalid order id, unknown status, or invalid actor
//	}
//	result, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct {
	orderID int64
	target  order.Status
	reason  string
	actor   kernel.ActorContext

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a validated transition command.
// reason is recorded only when the target status is Rejected.
func NewTransitionOrderCommand(
	orderID int64,
	target order.Status,
	reason string,
	actor kernel.ActorContext,
) (TransitionOrderCommand, error) {
	if orderID <= 0 {
		return TransitionOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if err := target.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}
	if err := actor.Role.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		reason:  reason,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to transition.
func (c *TransitionOrderCommand) OrderID() int64 {
	return c.orderID
}

// Target returns the requested status.
func (c *TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Reason returns the rejection reason, empty for other targets.
func (c *TransitionOrderCommand) Reason() string {
	return c.reason
}

// Actor returns who requested the transition.
func (c *TransitionOrderCommand) Actor() kernel.ActorContext {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}
