package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrVariationIsNotConstructed is returned when a Variation instance
	// was not created through RestoreVariation.
	ErrVariationIsNotConstructed = errors.New("Variation must be created via RestoreVariation")

	// ErrVariationHasNoOwnStock is returned when deducting from a
	// variation that inherits its parent product's stock counter.
	ErrVariationHasNoOwnStock = errors.New("variation does not carry its own stock level")
)

// Variation is a sellable variant of a product (size, color, bundle). A
// variation may carry its own stock counter; when it does, that counter,
// not the parent product's, is the deduction target for line items
// referencing the variation. A nil stock level means the variation inherits
// the parent product's counter.
type Variation struct {
	id         int64
	productID  int64
	name       string
	stockLevel *int

	isConstructed bool
}

// RestoreVariation reconstructs a variation from persistence. stockLevel
// is nil for variations without their own stock counter.
func RestoreVariation(id, productID int64, name string, stockLevel *int) (*Variation, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("variationId")
	}
	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	return &Variation{
		id:            id,
		productID:     productID,
		name:          name,
		stockLevel:    stockLevel,
		isConstructed: true,
	}, nil
}

// Validate ensures the Variation instance was properly constructed.
func (v *Variation) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVariationIsNotConstructed
	}
	return nil
}

// ID returns the variation identifier.
func (v *Variation) ID() int64 {
	return v.id
}

// ProductID returns the parent product.
func (v *Variation) ProductID() int64 {
	return v.productID
}

// Name returns the variation label.
func (v *Variation) Name() string {
	return v.name
}

// StockLevel returns the variation's own stock counter, or nil when the
// variation inherits the parent product's counter.
func (v *Variation) StockLevel() *int {
	return v.stockLevel
}

// HasOwnStock reports whether this variation is its own deduction target.
func (v *Variation) HasOwnStock() bool {
	return v.stockLevel != nil
}

// Deduct decrements the variation's own stock counter by quantity,
// flooring at zero: a line item larger than the remaining variation stock
// exhausts the counter rather than driving it negative.
// Returns ErrVariationHasNoOwnStock when the variation inherits the parent
// product's counter; callers must deduct from the product instead.
func (v *Variation) Deduct(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if v.stockLevel == nil {
		return ErrVariationHasNoOwnStock
	}

	*v.stockLevel -= quantity
	if *v.stockLevel < 0 {
		*v.stockLevel = 0
	}
	return nil
}
