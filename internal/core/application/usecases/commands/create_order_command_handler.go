package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a checkout. Creation is deliberately
// side-effect free beyond the insert: notifications, stock movement, and
// delivery records all belong to later transitions.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order checkout.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the checkout command and returns the stored order's
// identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.CustomerPhone(),
		cmd.Amount(),
		cmd.DeliveryMethod(),
		cmd.Items(),
		time.Now(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
