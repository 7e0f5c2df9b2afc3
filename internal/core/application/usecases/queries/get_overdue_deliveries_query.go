package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOverdueDeliveriesQueryIsNotConstructed = errors.New(
	"GetOverdueDeliveriesQuery must be created via NewGetOverdueDeliveriesQuery constructor",
)

// GetOverdueDeliveriesQuery finds deliveries that left with a driver but
// have not been finalized within the given age. Feeds the overdue
// monitoring job.
type GetOverdueDeliveriesQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueDeliveriesQuery creates an overdue query with the given age
// threshold.
func NewGetOverdueDeliveriesQuery(olderThan time.Duration) (GetOverdueDeliveriesQuery, error) {
	if olderThan <= 0 {
		return GetOverdueDeliveriesQuery{}, errs.NewValueIsInvalidError("olderThan")
	}
	return GetOverdueDeliveriesQuery{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

// OlderThan returns the age threshold.
func (q GetOverdueDeliveriesQuery) OlderThan() time.Duration {
	return q.olderThan
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

// OverdueDeliveryResponse is one overdue delivery.
type OverdueDeliveryResponse struct {
	ID          int64
	OrderID     int64
	TrackingRef string
	DriverID    *int64
	UpdatedAt   time.Time
}
