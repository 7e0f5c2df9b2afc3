package deliveryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery record and marks the aggregate with the
// storage-assigned identifier.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.MarkPersisted(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery record.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "DriverID", "VehicleID", "Details", "CancellationReason",
			"CancelledBy", "CancelledAt", "RescheduleCount", "LastRescheduledAt", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the order's most recent delivery record, terminal
// or not. Callers distinguish "create one" (not found) from "leave it
// alone" (terminal) from "advance it" (active).
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByVehicleID retrieves every active delivery referencing the
// vehicle, excluding the one belonging to excludeOrderID. Feeds the
// double-booking conflict check.
func (r *GormDeliveryRepository) GetActiveByVehicleID(
	ctx context.Context,
	vehicleID int64,
	excludeOrderID int64,
) ([]*delivery.Delivery, error) {
	if vehicleID <= 0 {
		return nil, errs.NewValueIsRequiredError("vehicleId")
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Where("order_id <> ?", excludeOrderID).
		Where("status NOT IN (?, ?)", delivery.Delivered.String(), delivery.Cancelled.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
