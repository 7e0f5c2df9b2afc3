package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role identifies the authorization level of the acting user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin can perform every staff operation plus administrative ones.
	RoleAdmin

	// RoleStaff operates the fulfillment pipeline: approving payment,
	// moving orders through preparation, assigning drivers.
	RoleStaff

	// RoleDriver delivers orders and records proof of delivery.
	RoleDriver

	// RoleCustomer places orders; customers never drive state transitions.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin:    "admin",
		RoleStaff:    "staff",
		RoleDriver:   "driver",
		RoleCustomer: "customer",
	}
}

// ParseRole converts a persisted or transported role string to a Role.
// Unknown strings are rejected with a validation error.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Role holds one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ActorContext is the explicit identity of the user performing an operation.
// Every command receives one; authorization decisions are pure functions of
// this value and never consult global session state.
type ActorContext struct {
	UserID int64
	Role   Role
}

// NewActorContext creates a validated ActorContext.
func NewActorContext(userID int64, role Role) (ActorContext, error) {
	if userID <= 0 {
		return ActorContext{}, errs.NewValueIsRequiredError("userId")
	}
	if err := role.Validate(); err != nil {
		return ActorContext{}, err
	}
	return ActorContext{UserID: userID, Role: role}, nil
}

// CanManageOrders reports whether the actor may drive order status
// transitions.
func (a ActorContext) CanManageOrders() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff
}

// CanManageDeliveries reports whether the actor may assign, cancel, or
// reschedule deliveries.
func (a ActorContext) CanManageDeliveries() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff
}

// CanRecordDelivery reports whether the actor may mark a delivery as
// completed with proof of delivery.
func (a ActorContext) CanRecordDelivery() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff || a.Role == RoleDriver
}
