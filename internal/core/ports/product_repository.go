package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog's
// stock counters. The engine only loads what an order's line items
// reference and writes back the counters the deduction touched.
type ProductRepository interface {
	// GetByIDs retrieves products keyed by ID. IDs without a matching row
	// are simply absent from the result; callers decide whether that is
	// an error.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)

	// GetVariationsByIDs retrieves variations keyed by ID.
	GetVariationsByIDs(ctx context.Context, ids []int64) (map[int64]*product.Variation, error)

	// UpdateStock persists a product's stock counter and derived status.
	UpdateStock(ctx context.Context, aggregate *product.Product) error

	// UpdateVariationStock persists a variation's own stock counter.
	UpdateVariationStock(ctx context.Context, aggregate *product.Variation) error
}
