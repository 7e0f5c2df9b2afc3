package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// LineItem is one position of an order: a product reference, an optional
// product variation reference, a quantity, and the unit price captured at
// order time. Line items are immutable after creation so later catalog
// price changes never retroactively change historical orders.
type LineItem struct {
	productID   int64
	variationID *int64
	quantity    int
	unitPrice   float64
}

// NewLineItem creates a validated line item. variationID may be nil for
// products ordered without a variation.
func NewLineItem(productID int64, variationID *int64, quantity int, unitPrice float64) (LineItem, error) {
	if productID <= 0 {
		return LineItem{}, errs.NewValueIsRequiredError("productId")
	}
	if variationID != nil && *variationID <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("variationId",
			fmt.Errorf("%d is not a valid variation id", *variationID))
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return LineItem{
		productID:   productID,
		variationID: variationID,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID returns the referenced product.
func (li LineItem) ProductID() int64 {
	return li.productID
}

// VariationID returns the referenced product variation, or nil when the
// item was ordered without one.
func (li LineItem) VariationID() *int64 {
	return li.variationID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit captured at order time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}
