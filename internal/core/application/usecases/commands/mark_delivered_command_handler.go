package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// MarkDeliveredCommandHandler records proof of delivery. The delivery
// becomes Delivered and the order moves Ready -> Completed in the same
// transaction: a delivered order that is still Ready would be a lie in
// both directions.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher ports.EventDispatcher
}

// NewMarkDeliveredCommandHandler creates a handler for proof of delivery.
func NewMarkDeliveredCommandHandler(
	uowFactory DeliveryUoWFactory,
	dispatcher ports.EventDispatcher,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

// Handle processes the proof-of-delivery command.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanRecordDelivery() {
		return errs.NewPermissionDeniedError(cmd.Actor().Role.String(), "record deliveries")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	o, err := uow.OrderRepository().GetByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	d, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = d.MarkDelivered(cmd.Details(), now); err != nil {
		return err
	}

	if _, err = o.TransitionTo(order.Completed, now); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, []notification.Event{{
		OrderID:        o.ID(),
		CustomerID:     o.CustomerID(),
		CustomerPhone:  o.CustomerPhone(),
		Type:           notification.EventOrderDelivered,
		DeliveryMethod: o.DeliveryMethod().String(),
	}})

	return nil
}
