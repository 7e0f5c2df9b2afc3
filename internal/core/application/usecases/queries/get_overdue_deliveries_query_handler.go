package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/delivery"
)

// GetOverdueDeliveriesQueryHandler finds Out for Delivery rows whose last
// update is older than the threshold.
type GetOverdueDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueDeliveriesQueryHandler creates a handler for the overdue
// query.
func NewGetOverdueDeliveriesQueryHandler(db *gorm.DB) GetOverdueDeliveriesQueryHandler {
	return GetOverdueDeliveriesQueryHandler{db: db}
}

// Handle executes the query against the given clock moment.
func (h GetOverdueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDeliveriesQuery,
) ([]OverdueDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())
	overdue := make([]OverdueDeliveryResponse, 0)

	// Legacy rows spell Out for Delivery as "On the Way"; both are overdue
	// candidates.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			tracking_ref,
			driver_id,
			updated_at
		FROM deliveries
		WHERE status IN (?, ?)
		  AND updated_at < ?
		ORDER BY updated_at
	`, delivery.OutForDelivery.String(), "On the Way", cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OverdueDeliveryResponse
		err = rows.Scan(&resp.ID, &resp.OrderID, &resp.TrackingRef, &resp.DriverID, &resp.UpdatedAt)
		if err != nil {
			return nil, err
		}
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
