package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelDeliveryCommandHandler cancels an order's active delivery and
// stamps who cancelled it, when, and why. Cancelled is terminal: the
// record is never reused, and arranging a new delivery later creates a
// fresh record.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher ports.EventDispatcher
}

// NewCancelDeliveryCommandHandler creates a handler for delivery
// cancellation.
func NewCancelDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	dispatcher ports.EventDispatcher,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

// Handle processes the cancellation command.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageDeliveries() {
		return errs.NewPermissionDeniedError(cmd.Actor().Role.String(), "cancel deliveries")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	d, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = d.Cancel(cmd.Reason(), cmd.Actor().UserID, time.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, []notification.Event{{
		OrderID:        o.ID(),
		CustomerID:     o.CustomerID(),
		CustomerPhone:  o.CustomerPhone(),
		Type:           notification.EventDeliveryCancelled,
		DeliveryMethod: o.DeliveryMethod().String(),
	}})

	return nil
}
