// Package queries contains the read side of the engine: parameterized
// query objects with guarded construction and handlers that run raw SQL
// against the database, bypassing the aggregate repositories.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items and, when the
// order is on Standard Delivery, its most recent delivery record.
//
// Example:
//
//	query, err := NewGetOrderQuery(1001)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderItemResponse is one line item of the order read model.
type OrderItemResponse struct {
	ProductID   int64
	VariationID *int64
	Quantity    int
	UnitPrice   float64
}

// OrderDeliveryResponse is the delivery slice of the order read model,
// present only when a delivery record exists.
type OrderDeliveryResponse struct {
	ID              int64
	TrackingRef     string
	Status          string
	DriverID        *int64
	VehicleID       *int64
	RescheduleCount int
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID              int64
	CustomerID      int64
	CustomerPhone   string
	Amount          float64
	Status          string
	DeliveryMethod  string
	OrderDate       time.Time
	LastUpdated     time.Time
	RejectionReason string
	Items           []OrderItemResponse
	Delivery        *OrderDeliveryResponse
}
