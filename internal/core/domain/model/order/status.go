package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// State transitions:
//
//	Waiting Payment ──> Processing ──> Ready ──> Completed
//	       │                │
//	       └──> Rejected <──┘
//
// Re-issuing the current status is always a valid no-op transition; side
// effects are keyed off the Ready edge, not off the transition itself.
// Rejected and Completed are terminal. Rejected is unreachable once an
// order has entered Ready.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// WaitingPayment is the initial status: the customer has checked out
	// and staff have not yet approved payment.
	WaitingPayment

	// Processing indicates payment was approved and the order is being
	// prepared.
	Processing

	// Ready is the pivot status: entering it for the first time deducts
	// inventory and, for delivery orders, creates the delivery record.
	Ready

	// Rejected is a terminal status reachable from any pre-Ready status.
	// Rejection is a status, not a removal; orders are never hard-deleted.
	Rejected

	// Completed is the terminal status for fulfilled orders.
	Completed
)

// legacyStatusAliases maps historical persisted values onto their current
// equivalents. Aliases are accepted on read and never written back.
var legacyStatusAliases = map[string]Status{
	"Pending Approval": WaitingPayment,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		WaitingPayment: "Waiting Payment",
		Processing:     "Processing",
		Ready:          "Ready",
		Rejected:       "Rejected",
		Completed:      "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingPayment: "Waiting Payment",
		Processing:     "Processing",
		Ready:          "Ready",
		Rejected:       "Rejected",
		Completed:      "Completed",
	}
}

// ParseStatus converts a persisted or transported status string to a
// Status. Legacy aliases ("Pending Approval") are mapped to their current
// value; anything else is rejected with a validation error.
func ParseStatus(s string) (Status, error) {
	if status, ok := legacyStatusAliases[s]; ok {
		return status, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// CanTransitionTo reports whether the transition from s to target is
// allowed by the workflow. Re-issuing the current status is allowed; the
// caller decides whether the edge carries side effects.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}

	switch s {
	case WaitingPayment:
		return target == Processing || target == Rejected
	case Processing:
		return target == Ready || target == Rejected
	case Ready:
		return target == Completed
	default:
		return false
	}
}

// TransitionTo validates and performs the transition to target.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if target is not a valid status or the edge is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStateError("order",
			fmt.Sprintf("cannot transition from %s to %s", s, target))
	}

	return target, nil
}
