// Package deliveryrepo persists delivery records: the per-order tracking
// row carrying driver/vehicle assignment, cancellation metadata, and the
// reschedule counter.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fulfillment/internal/core/domain/model/delivery"
)

// DeliveryDTO is the database representation of a delivery record.
type DeliveryDTO struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	OrderID            int64     `gorm:"index"`
	TrackingRef        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status             string    `gorm:"type:varchar(32);index"`
	DriverID           *int64    `gorm:"index"`
	VehicleID          *int64    `gorm:"index"`
	Details            datatypes.JSON
	CancellationReason string    `gorm:"type:text"`
	CancelledBy        *int64
	CancelledAt        *time.Time
	RescheduleCount    int
	LastRescheduledAt  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                 d.ID(),
		OrderID:            d.OrderID(),
		TrackingRef:        d.TrackingRef(),
		Status:             d.Status().String(),
		DriverID:           d.DriverID(),
		VehicleID:          d.VehicleID(),
		Details:            d.Details(),
		CancellationReason: d.CancellationReason(),
		CancelledBy:        d.CancelledBy(),
		CancelledAt:        d.CancelledAt(),
		RescheduleCount:    d.RescheduleCount(),
		LastRescheduledAt:  d.LastRescheduledAt(),
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery aggregate. Rows written
// by the legacy system with the "On the Way" spelling restore as Out for
// Delivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		dto.ID,
		dto.OrderID,
		dto.TrackingRef,
		status,
		dto.DriverID,
		dto.VehicleID,
		dto.Details,
		dto.CancellationReason,
		dto.CancelledBy,
		dto.CancelledAt,
		dto.RescheduleCount,
		dto.LastRescheduledAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
