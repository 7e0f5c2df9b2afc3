package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AssignmentResult is the outcome of a driver assignment. DriverName is
// empty for unassignment.
type AssignmentResult struct {
	DeliveryID int64
	DriverName string
	Events     []notification.Event
}

// AssignDriverCommandHandler coordinates driver/vehicle assignment. The
// double-booking check and the delivery mutation share one transaction, so
// a conflict found mid-flight can never leave a half-applied assignment.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher ports.EventDispatcher
	checker    services.VehicleAssignmentChecker
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher ports.EventDispatcher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		checker:    services.NewVehicleAssignmentChecker(),
	}
}

// Handle processes the assignment command.
//
// Assignment requires a Ready order on Standard Delivery. When the order
// has no delivery record yet, one is created as part of the assignment;
// a terminal record means the delivery chapter is closed and the
// assignment is refused.
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDriverCommand,
) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	if !cmd.Actor().CanManageDeliveries() {
		return AssignmentResult{}, errs.NewPermissionDeniedError(
			cmd.Actor().Role.String(), "assign drivers")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetByID(ctx, cmd.OrderID())
	if err != nil {
		return AssignmentResult{}, err
	}

	if o.Status() != order.Ready {
		return AssignmentResult{}, errs.NewInvalidStateError("order",
			"must be Ready before a driver can be assigned")
	}
	if !o.DeliveryMethod().RequiresDelivery() {
		return AssignmentResult{}, errs.NewInvalidStateError("order",
			"is for pickup and has no delivery to assign")
	}

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return AssignmentResult{}, err
	}

	driverName := ""
	if driverID := cmd.DriverID(); driverID != nil {
		driverRef, driverErr := uow.DriverRepository().Get(ctx, *driverID)
		if driverErr != nil {
			return AssignmentResult{}, driverErr
		}
		driverName = driverRef.Name

		otherActive, listErr := uow.DeliveryRepository().GetActiveByVehicleID(
			ctx, cmd.VehicleID(), cmd.OrderID())
		if listErr != nil {
			return AssignmentResult{}, listErr
		}

		if holderID, conflict := h.checker.Check(*driverID, otherActive); conflict {
			holder, holderErr := uow.DriverRepository().Get(ctx, holderID)
			if holderErr != nil {
				return AssignmentResult{}, holderErr
			}
			return AssignmentResult{}, errs.NewVehicleConflictError(v.Model(), holder.Name)
		}
	}

	now := time.Now()
	deliveryRepo := uow.DeliveryRepository()

	d, isNew, err := h.deliveryForAssignment(ctx, deliveryRepo, cmd.OrderID(), now)
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = d.AssignDriver(cmd.DriverID(), cmd.VehicleID(), now); err != nil {
		return AssignmentResult{}, err
	}

	if isNew {
		err = deliveryRepo.Add(ctx, d)
	} else {
		err = deliveryRepo.Update(ctx, d)
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	var events []notification.Event
	if cmd.DriverID() != nil {
		events = []notification.Event{{
			OrderID:        o.ID(),
			CustomerID:     o.CustomerID(),
			CustomerPhone:  o.CustomerPhone(),
			Type:           notification.EventDriverAssigned,
			DeliveryMethod: o.DeliveryMethod().String(),
		}}
		h.dispatcher.Dispatch(ctx, events)
	}

	return AssignmentResult{
		DeliveryID: d.ID(),
		DriverName: driverName,
		Events:     events,
	}, nil
}

// deliveryForAssignment loads the order's delivery record, creating a
// Pending one when the order has none yet. A terminal record refuses the
// assignment.
func (h AssignDriverCommandHandler) deliveryForAssignment(
	ctx context.Context,
	repo ports.DeliveryRepository,
	orderID int64,
	now time.Time,
) (*delivery.Delivery, bool, error) {
	existing, err := repo.GetByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		created, newErr := delivery.NewDelivery(orderID, delivery.Pending, now)
		if newErr != nil {
			return nil, false, newErr
		}
		return created, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !existing.IsActive() {
		return nil, false, errs.NewInvalidStateError("delivery",
			"is already finalized and cannot be reassigned")
	}

	return existing, false, nil
}
