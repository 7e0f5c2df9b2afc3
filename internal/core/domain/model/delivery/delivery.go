package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery is the tracking record for a Standard Delivery order. There is
// at most one active (non-terminal) delivery per order; Pick Up orders
// never acquire one.
//
// The record is created lazily, either on the order's Ready edge or when
// staff first assign a driver, and carries the driver/vehicle assignment,
// the free-form proof-of-delivery payload, and cancellation/reschedule
// metadata.
type Delivery struct {
	id                 int64
	orderID            int64
	trackingRef        uuid.UUID
	status             Status
	driverID           *int64
	vehicleID          *int64
	details            datatypes.JSON
	cancellationReason string
	cancelledBy        *int64
	cancelledAt        *time.Time
	rescheduleCount    int
	lastRescheduledAt  *time.Time
	createdAt          time.Time
	updatedAt          time.Time

	isConstructed bool
}

// NewDelivery creates a delivery record for an order. The record starts in
// the given status (Pending when created ahead of time, Out for Delivery
// when created on the Ready edge) with a fresh tracking reference.
func NewDelivery(orderID int64, status Status, now time.Time) (*Delivery, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.IsTerminal() {
		return nil, errs.NewInvalidStateError("delivery", "cannot be created in a terminal status")
	}

	return &Delivery{
		orderID:       orderID,
		trackingRef:   uuid.New(),
		status:        status,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence. Used only by
// repository implementations.
func RestoreDelivery(
	id int64,
	orderID int64,
	trackingRef uuid.UUID,
	status Status,
	driverID *int64,
	vehicleID *int64,
	details datatypes.JSON,
	cancellationReason string,
	cancelledBy *int64,
	cancelledAt *time.Time,
	rescheduleCount int,
	lastRescheduledAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("deliveryId")
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                 id,
		orderID:            orderID,
		trackingRef:        trackingRef,
		status:             status,
		driverID:           driverID,
		vehicleID:          vehicleID,
		details:            details,
		cancellationReason: cancellationReason,
		cancelledBy:        cancelledBy,
		cancelledAt:        cancelledAt,
		rescheduleCount:    rescheduleCount,
		lastRescheduledAt:  lastRescheduledAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery identifier (zero until first persisted).
func (d *Delivery) ID() int64 {
	return d.id
}

// MarkPersisted records the identifier assigned by storage.
func (d *Delivery) MarkPersisted(id int64) error {
	if d.id != 0 {
		return errs.NewInvalidStateError("delivery", "identifier already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("deliveryId")
	}
	d.id = id
	return nil
}

// OrderID returns the tracked order.
func (d *Delivery) OrderID() int64 {
	return d.orderID
}

// TrackingRef returns the external tracking reference of this delivery.
func (d *Delivery) TrackingRef() uuid.UUID {
	return d.trackingRef
}

// Status returns the current status.
func (d *Delivery) Status() Status {
	return d.status
}

// DriverID returns the assigned driver, or nil when unassigned.
func (d *Delivery) DriverID() *int64 {
	return d.driverID
}

// VehicleID returns the assigned vehicle, or nil when unassigned.
func (d *Delivery) VehicleID() *int64 {
	return d.vehicleID
}

// Details returns the free-form proof-of-delivery payload.
func (d *Delivery) Details() datatypes.JSON {
	return d.details
}

// CancellationReason returns the recorded cancellation reason.
func (d *Delivery) CancellationReason() string {
	return d.cancellationReason
}

// CancelledBy returns who cancelled the delivery, or nil.
func (d *Delivery) CancelledBy() *int64 {
	return d.cancelledBy
}

// CancelledAt returns when the delivery was cancelled, or nil.
func (d *Delivery) CancelledAt() *time.Time {
	return d.cancelledAt
}

// RescheduleCount returns how many times the delivery was rescheduled.
func (d *Delivery) RescheduleCount() int {
	return d.rescheduleCount
}

// LastRescheduledAt returns the latest reschedule timestamp, or nil.
func (d *Delivery) LastRescheduledAt() *time.Time {
	return d.lastRescheduledAt
}

// CreatedAt returns when the record was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the record was last mutated.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsActive reports whether the delivery still counts against the
// one-active-delivery-per-order and vehicle-availability invariants.
func (d *Delivery) IsActive() bool {
	return !d.status.IsTerminal()
}

// MarkOutForDelivery advances an active delivery to Out for Delivery.
// Terminal deliveries are rejected; callers on the ensure path must skip
// them instead of reviving them.
func (d *Delivery) MarkOutForDelivery(now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("delivery", "cannot advance a "+d.status.String()+" delivery")
	}

	d.status = OutForDelivery
	d.updatedAt = now
	return nil
}

// AssignDriver records the driver and vehicle on an active delivery and
// advances its status toward Out for Delivery. A nil driverID unassigns
// the driver without touching the vehicle conflict rules; conflict
// checking against other active deliveries is the caller's concern.
func (d *Delivery) AssignDriver(driverID *int64, vehicleID int64, now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("delivery", "cannot assign a "+d.status.String()+" delivery")
	}
	if vehicleID <= 0 {
		return errs.NewValueIsRequiredError("vehicleId")
	}

	d.driverID = driverID
	d.vehicleID = &vehicleID
	d.status = OutForDelivery
	d.updatedAt = now
	return nil
}

// MarkDelivered completes an active delivery and records the free-form
// proof-of-delivery payload. Terminal.
func (d *Delivery) MarkDelivered(details datatypes.JSON, now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("delivery", "cannot complete a "+d.status.String()+" delivery")
	}

	d.status = Delivered
	d.details = details
	d.updatedAt = now
	return nil
}

// Cancel terminates an active delivery, recording who cancelled it, when,
// and why. Subsequent transitions on a cancelled delivery are rejected.
func (d *Delivery) Cancel(reason string, byUserID int64, now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("delivery", "cannot cancel a "+d.status.String()+" delivery")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	d.status = Cancelled
	d.cancellationReason = reason
	d.cancelledBy = &byUserID
	d.cancelledAt = &now
	d.updatedAt = now
	return nil
}

// Reschedule increments the reschedule counter and stamps the timestamp.
// The status is deliberately unchanged.
func (d *Delivery) Reschedule(now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("delivery", "cannot reschedule a "+d.status.String()+" delivery")
	}

	d.rescheduleCount++
	d.lastRescheduledAt = &now
	d.updatedAt = now
	return nil
}
