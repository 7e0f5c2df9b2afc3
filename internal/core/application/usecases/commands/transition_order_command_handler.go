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

// TransitionResult is the definitive outcome of a transition. StockReduced
// reports whether this call fired the inventory deduction; re-issuing
// Ready on an already-Ready order succeeds with StockReduced false.
type TransitionResult struct {
	OrderID      int64
	NewStatus    order.Status
	StockReduced bool
	Events       []notification.Event
}

// TransitionOrderCommandHandler orchestrates the order state machine.
//
// Everything that must be consistent moves inside one unit of work: the
// order row (locked on read so concurrent transitions serialize), the
// stock counters on the Ready edge, and the delivery record for Standard
// Delivery orders. Deduction runs before the delivery upsert, and both run
// before commit. Notification fan-out happens strictly after commit and is
// best-effort; the dispatcher never influences the returned result.
type TransitionOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	dispatcher ports.EventDispatcher
	deducter   services.StockDeducter
}

// NewTransitionOrderCommandHandler creates a handler for order status
// transitions.
func NewTransitionOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher ports.EventDispatcher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		deducter:   services.NewStockDeducter(),
	}
}

// Handle processes the transition command.
//
// Any error before Begin leaves no side effects. Any error inside the
// transaction rolls back order status, stock, and delivery changes as one
// unit; partial application is never allowed to survive.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if !cmd.Actor().CanManageOrders() {
		return TransitionResult{}, errs.NewPermissionDeniedError(
			cmd.Actor().Role.String(), "transition orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	// The row lock makes the idempotency guard safe under concurrency:
	// two simultaneous Ready transitions serialize here, and the second
	// observes Ready and skips the side effects.
	o, err := orderRepo.GetByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	now := time.Now()
	previous := o.Status()
	var readyEdge bool

	if cmd.Target() == order.Rejected {
		err = o.Reject(cmd.Reason(), now)
	} else {
		readyEdge, err = o.TransitionTo(cmd.Target(), now)
	}
	if err != nil {
		return TransitionResult{}, err
	}

	if readyEdge {
		if !o.HasItems() {
			return TransitionResult{}, errs.NewInvalidStateError("order", "has no line items to fulfill")
		}

		if err = h.deductStock(ctx, uow, o); err != nil {
			return TransitionResult{}, err
		}

		if o.DeliveryMethod().RequiresDelivery() {
			if err = h.ensureDelivery(ctx, uow.DeliveryRepository(), o.ID(), now); err != nil {
				return TransitionResult{}, err
			}
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	events := buildTransitionEvents(o, previous)
	if len(events) > 0 {
		h.dispatcher.Dispatch(ctx, events)
	}

	return TransitionResult{
		OrderID:      o.ID(),
		NewStatus:    o.Status(),
		StockReduced: readyEdge,
		Events:       events,
	}, nil
}

// deductStock loads the counters the order's line items reference, applies
// the hybrid deduction, and persists exactly the touched aggregates.
func (h TransitionOrderCommandHandler) deductStock(
	ctx context.Context,
	uow FulfillmentUoW,
	o *order.Order,
) error {
	var productIDs, variationIDs []int64
	for _, item := range o.Items() {
		productIDs = append(productIDs, item.ProductID())
		if variationID := item.VariationID(); variationID != nil {
			variationIDs = append(variationIDs, *variationID)
		}
	}

	productRepo := uow.ProductRepository()

	products, err := productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	variations, err := productRepo.GetVariationsByIDs(ctx, variationIDs)
	if err != nil {
		return err
	}

	result, err := h.deducter.Deduct(o, products, variations)
	if err != nil {
		return err
	}

	for _, p := range result.Products {
		if err = productRepo.UpdateStock(ctx, p); err != nil {
			return err
		}
	}
	for _, v := range result.Variations {
		if err = productRepo.UpdateVariationStock(ctx, v); err != nil {
			return err
		}
	}

	return nil
}

// ensureDelivery creates or advances the order's delivery record: no
// record -> create one Out for Delivery; active record -> advance it;
// terminal record -> leave untouched.
func (h TransitionOrderCommandHandler) ensureDelivery(
	ctx context.Context,
	repo ports.DeliveryRepository,
	orderID int64,
	now time.Time,
) error {
	existing, err := repo.GetByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		created, newErr := delivery.NewDelivery(orderID, delivery.OutForDelivery, now)
		if newErr != nil {
			return newErr
		}
		return repo.Add(ctx, created)
	}
	if err != nil {
		return err
	}

	if !existing.IsActive() {
		return nil
	}

	if err = existing.MarkOutForDelivery(now); err != nil {
		return err
	}
	return repo.Update(ctx, existing)
}

// buildTransitionEvents assembles the post-commit fan-out list for the
// committed transition. Re-issuing the current status is a no-op and
// notifies nobody.
func buildTransitionEvents(o *order.Order, previous order.Status) []notification.Event {
	if o.Status() == previous {
		return nil
	}

	eventType, ok := notification.EventTypeForStatus(o.Status().String())
	if !ok {
		return nil
	}

	return []notification.Event{{
		OrderID:        o.ID(),
		CustomerID:     o.CustomerID(),
		CustomerPhone:  o.CustomerPhone(),
		Type:           eventType,
		DeliveryMethod: o.DeliveryMethod().String(),
	}}
}
