package services

import (
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// StockDeducter is the domain service that applies the inventory deduction
// for an order entering Ready. It is pure: the caller loads the referenced
// products and variations, the deducter mutates them in memory, and the
// caller persists whatever was touched inside the shared transaction.
//
// The deduction target is chosen per line item independently (the hybrid
// rule): an item referencing a variation with its own stock counter
// decrements that counter; every other item decrements the parent
// product's counter and recomputes its derived stock status.
//
// The deducter runs unconditionally when called. Firing at most once per
// order is its caller's idempotency guard, keyed off the Ready edge, not
// a concern of this service.
type StockDeducter struct{}

// NewStockDeducter creates a StockDeducter.
func NewStockDeducter() StockDeducter {
	return StockDeducter{}
}

// DeductionResult lists the aggregates whose counters were touched, in the
// order they were first hit. The caller persists exactly these.
type DeductionResult struct {
	Products   []*product.Product
	Variations []*product.Variation
}

// Deduct applies the hybrid deduction for every line item of the order.
//
// products and variations are keyed by ID and must cover every reference
// the order's items make; a missing entry aborts the whole deduction with
// an ObjectNotFound error, leaving the shared transaction to roll back
// whatever was already applied. There is no per-item compensation.
func (StockDeducter) Deduct(
	o *order.Order,
	products map[int64]*product.Product,
	variations map[int64]*product.Variation,
) (DeductionResult, error) {
	if err := o.Validate(); err != nil {
		return DeductionResult{}, err
	}

	var result DeductionResult
	touchedProducts := make(map[int64]bool)
	touchedVariations := make(map[int64]bool)

	for _, item := range o.Items() {
		if variationID := item.VariationID(); variationID != nil {
			variation, ok := variations[*variationID]
			if !ok {
				return DeductionResult{}, errs.NewObjectNotFoundError("variationId", *variationID)
			}

			if variation.HasOwnStock() {
				if err := variation.Deduct(item.Quantity()); err != nil {
					return DeductionResult{}, err
				}
				if !touchedVariations[variation.ID()] {
					touchedVariations[variation.ID()] = true
					result.Variations = append(result.Variations, variation)
				}
				continue
			}
			// variation without its own counter: fall through to the
			// parent product
		}

		prod, ok := products[item.ProductID()]
		if !ok {
			return DeductionResult{}, errs.NewObjectNotFoundError("productId", item.ProductID())
		}

		if err := prod.Deduct(item.Quantity()); err != nil {
			return DeductionResult{}, err
		}
		if !touchedProducts[prod.ID()] {
			touchedProducts[prod.ID()] = true
			result.Products = append(result.Products, prod)
		}
	}

	return result, nil
}
