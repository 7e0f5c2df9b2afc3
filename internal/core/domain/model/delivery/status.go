package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery record.
//
// State transitions:
//
//	Pending ──> Preparing ──> Out for Delivery ──> Delivered
//	    │           │                │
//	    └───────────┴────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: a terminal delivery is never
// advanced, reassigned, or revived. "Active" throughout the engine means
// any non-terminal status.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status for a delivery awaiting preparation.
	Pending

	// Preparing indicates the order is being packed for dispatch.
	Preparing

	// OutForDelivery indicates the order has left with a driver.
	OutForDelivery

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal failure status, with stamped metadata.
	Cancelled
)

// legacyStatusAliases maps historical persisted values onto their current
// equivalents. Aliases are accepted on read and never written back.
var legacyStatusAliases = map[string]Status{
	"On the Way": OutForDelivery,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// ParseStatus converts a persisted status string to a Status. The legacy
// alias "On the Way" maps to Out for Delivery; anything else unknown is
// rejected with a validation error.
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
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
