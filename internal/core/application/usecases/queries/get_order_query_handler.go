package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler reads an order straight from the database. Read
// models skip the aggregate layer; the write-side invariants do not apply
// here.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFound error when the
// order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var rejectionReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_phone,
			amount,
			status,
			delivery_method,
			order_date,
			last_updated,
			rejection_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.CustomerPhone,
		&resp.Amount,
		&resp.Status,
		&resp.DeliveryMethod,
		&resp.OrderDate,
		&resp.LastUpdated,
		&rejectionReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.RejectionReason = rejectionReason.String

	// Rows written by the legacy system may carry old status spellings;
	// the read model always reports the canonical one.
	status, err := order.ParseStatus(resp.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = status.String()

	if err = h.loadItems(ctx, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = h.loadDelivery(ctx, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, resp *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			variation_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, resp.ID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.ProductID, &item.VariationID, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		resp.Items = append(resp.Items, item)
	}

	return rows.Err()
}

func (h GetOrderQueryHandler) loadDelivery(ctx context.Context, resp *GetOrderQueryResponse) error {
	var d OrderDeliveryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_ref,
			status,
			driver_id,
			vehicle_id,
			reschedule_count
		FROM deliveries
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, resp.ID).Row()

	err := row.Scan(&d.ID, &d.TrackingRef, &d.Status, &d.DriverID, &d.VehicleID, &d.RescheduleCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	status, err := delivery.ParseStatus(d.Status)
	if err != nil {
		return err
	}
	d.Status = status.String()

	resp.Delivery = &d
	return nil
}
