package commands

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"
)

// RescheduleDeliveryCommandHandler bumps the delivery attempt counter.
// No notification fans out for a reschedule.
type RescheduleDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRescheduleDeliveryCommandHandler creates a handler for delivery
// rescheduling.
func NewRescheduleDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RescheduleDeliveryCommandHandler {
	return RescheduleDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the reschedule command and returns the new attempt
// count.
func (h RescheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd RescheduleDeliveryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if !cmd.Actor().CanManageDeliveries() {
		return 0, errs.NewPermissionDeniedError(cmd.Actor().Role.String(), "reschedule deliveries")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = d.Reschedule(time.Now()); err != nil {
		return 0, err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return d.RescheduleCount(), nil
}
