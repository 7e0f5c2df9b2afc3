package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/delivery"
)

// GetActiveDeliveriesQueryHandler lists non-terminal deliveries with their
// driver and vehicle joined in, newest first.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for the
// active-deliveries query.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]ActiveDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]ActiveDeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.tracking_ref,
			d.status,
			d.driver_id,
			dr.name,
			d.vehicle_id,
			v.model,
			d.reschedule_count,
			d.created_at,
			d.updated_at
		FROM deliveries d
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		LEFT JOIN vehicles v ON v.id = d.vehicle_id
		WHERE d.status NOT IN (?, ?)
		ORDER BY d.created_at DESC
	`, delivery.Delivered.String(), delivery.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ActiveDeliveryResponse
		err = rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.TrackingRef,
			&resp.Status,
			&resp.DriverID,
			&resp.DriverName,
			&resp.VehicleID,
			&resp.VehicleModel,
			&resp.RescheduleCount,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		// Legacy rows carry old status spellings; report the canonical one.
		status, parseErr := delivery.ParseStatus(resp.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		resp.Status = status.String()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
