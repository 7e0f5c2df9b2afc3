package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemInput is one checkout position as it arrives at the boundary.
type LineItemInput struct {
	ProductID   int64
	VariationID *int64
	Quantity    int
	UnitPrice   float64
}

// CreateOrderCommand places a new order at checkout. The order starts in
// Waiting Payment; no stock moves and no delivery record exists until the
// order reaches Ready.
type CreateOrderCommand struct {
	customerID     int64
	customerPhone  string
	amount         float64
	deliveryMethod order.DeliveryMethod
	items          []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated checkout command. Every item
// is validated individually; one bad item fails the whole command.
func NewCreateOrderCommand(
	customerID int64,
	customerPhone string,
	amount float64,
	deliveryMethod order.DeliveryMethod,
	items []LineItemInput,
) (CreateOrderCommand, error) {
	if customerID <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("customerId")
	}
	if err := deliveryMethod.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.ProductID, item.VariationID, item.Quantity, item.UnitPrice)
		if err != nil {
			return CreateOrderCommand{}, err
		}
		lineItems = append(lineItems, lineItem)
	}

	return CreateOrderCommand{
		customerID:     customerID,
		customerPhone:  customerPhone,
		amount:         amount,
		deliveryMethod: deliveryMethod,
		items:          lineItems,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the ordering customer.
func (c *CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// CustomerPhone returns the customer's phone number, possibly empty.
func (c *CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Amount returns the order total.
func (c *CreateOrderCommand) Amount() float64 {
	return c.amount
}

// DeliveryMethod returns the requested fulfillment channel.
func (c *CreateOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

// Items returns the validated line items.
func (c *CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// Validate ensures the command was created through the constructor.
func (c *CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
