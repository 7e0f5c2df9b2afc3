package order

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the fulfillment pipeline. It owns the
// status field and is the only place status transitions are decided; every
// other component reacts to the edges it reports.
//
// Order follows these invariants:
//   - Must belong to a customer and carry a non-negative amount
//   - Status transitions follow the workflow defined on Status
//   - Line items are captured at creation and never mutated afterwards
//   - Rejection is a terminal status with stamped metadata, never a delete
type Order struct {
	id              int64
	customerID      int64
	customerPhone   string
	amount          float64
	status          Status
	deliveryMethod  DeliveryMethod
	items           []LineItem
	orderDate       time.Time
	lastUpdated     time.Time
	rejectedAt      *time.Time
	rejectionReason string

	isConstructed bool
}

// NewOrder creates an order at checkout. The order starts in Waiting
// Payment with the given line items; the identifier is assigned by storage
// on first persist.
func NewOrder(
	customerID int64,
	customerPhone string,
	amount float64,
	method DeliveryMethod,
	items []LineItem,
	now time.Time,
) (*Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	return &Order{
		customerID:     customerID,
		customerPhone:  customerPhone,
		amount:         amount,
		status:         WaitingPayment,
		deliveryMethod: method,
		items:          items,
		orderDate:      now,
		lastUpdated:    now,
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Used only by
// repository implementations; validates the restored state.
func RestoreOrder(
	id int64,
	customerID int64,
	customerPhone string,
	amount float64,
	status Status,
	method DeliveryMethod,
	items []LineItem,
	orderDate time.Time,
	lastUpdated time.Time,
	rejectedAt *time.Time,
	rejectionReason string,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		customerPhone:   customerPhone,
		amount:          amount,
		status:          status,
		deliveryMethod:  method,
		items:           items,
		orderDate:       orderDate,
		lastUpdated:     lastUpdated,
		rejectedAt:      rejectedAt,
		rejectionReason: rejectionReason,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier (zero until first persisted).
func (o *Order) ID() int64 {
	return o.id
}

// MarkPersisted records the identifier assigned by storage. It may be
// called once, by the repository that inserted the order.
func (o *Order) MarkPersisted(id int64) error {
	if o.id != 0 {
		return errs.NewInvalidStateError("order", "identifier already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

// CustomerID returns the owning customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// CustomerPhone returns the phone number captured at checkout.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Amount returns the monetary total of the order.
func (o *Order) Amount() float64 {
	return o.amount
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryMethod returns how the order reaches the customer.
func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// Items returns the order's line items. The returned slice is a copy;
// line items are immutable after creation.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// HasItems reports whether the order has anything to fulfill.
func (o *Order) HasItems() bool {
	return len(o.items) > 0
}

// OrderDate returns when the customer checked out.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// LastUpdated returns when the order row was last mutated.
func (o *Order) LastUpdated() time.Time {
	return o.lastUpdated
}

// RejectedAt returns when the order was rejected, or nil.
func (o *Order) RejectedAt() *time.Time {
	return o.rejectedAt
}

// RejectionReason returns the recorded rejection reason.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// TransitionTo moves the order to target and stamps lastUpdated.
//
// Returns:
//   - readyEdge: true iff the previous status was not Ready and the target
//     is Ready. This is the only edge that carries side effects (inventory
//     deduction, delivery-record creation); re-issuing Ready on an
//     already-Ready order is a valid transition with readyEdge false.
//   - error: validation error for unknown targets, invalid-state error for
//     disallowed edges. On error the order is unchanged.
func (o *Order) TransitionTo(target Status, now time.Time) (bool, error) {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}

	readyEdge := o.status != Ready && newStatus == Ready
	o.status = newStatus
	o.lastUpdated = now
	return readyEdge, nil
}

// Reject transitions the order to Rejected and stamps the rejection
// metadata. Rejection is only reachable from pre-Ready statuses.
// Re-issuing Rejected on an already-Rejected order is accepted but keeps
// the original rejection timestamp and reason.
func (o *Order) Reject(reason string, now time.Time) error {
	alreadyRejected := o.status == Rejected

	if _, err := o.TransitionTo(Rejected, now); err != nil {
		return err
	}

	if !alreadyRejected {
		o.rejectedAt = &now
		o.rejectionReason = reason
	}
	return nil
}
