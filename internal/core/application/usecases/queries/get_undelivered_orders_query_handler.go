package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/order"
)

// GetUndeliveredOrdersQueryHandler counts in-flight orders.
type GetUndeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredOrdersQueryHandler creates a handler for the
// undelivered-count query.
func NewGetUndeliveredOrdersQueryHandler(db *gorm.DB) GetUndeliveredOrdersQueryHandler {
	return GetUndeliveredOrdersQueryHandler{db: db}
}

// Handle executes the count. Terminal statuses (Completed, Rejected) are
// excluded; everything else is still the store's problem.
func (h GetUndeliveredOrdersQueryHandler) Handle(ctx context.Context, query GetUndeliveredOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status NOT IN (?, ?)
	`, order.Completed.String(), order.Rejected.String()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
