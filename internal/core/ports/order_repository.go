// Package ports defines the contracts between the core and infrastructure:
// repositories, the unit of work, and the external collaborators the
// engine fans out to. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its line items and marks the
	// aggregate with its storage-assigned identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves an order with its line items.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetByIDForUpdate retrieves an order with its line items while
	// holding a row-level lock until the surrounding transaction ends.
	// Transition handlers use this so two concurrent transitions cannot
	// both observe a pre-Ready status and double-deduct stock.
	GetByIDForUpdate(ctx context.Context, id int64) (*order.Order, error)
}
