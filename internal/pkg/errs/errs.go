package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure taxonomy. Callers classify
// failures with errors.Is against these values; the structured error types
// below carry the details and unwrap to their sentinel.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
)

// sanitize collapses an error detail to a single line so log output and
// HTTP responses stay well-formed.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValueIsRequiredError indicates a required parameter was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a parameter was present but malformed or
// outside the accepted set (e.g. an unknown status value).
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced entity (order, delivery,
// product, driver, vehicle) does not exist in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateError indicates a business-rule violation: the entity exists
// but its current state does not permit the requested operation (e.g.
// fulfilling an order with no line items, mutating a cancelled delivery).
type InvalidStateError struct {
	Entity string
	Detail string
}

func NewInvalidStateError(entity, detail string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Detail: detail}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrInvalidState, e.Entity, e.Detail))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// VehicleConflictError indicates a vehicle is already committed to an
// active delivery under a different driver. The message names both sides so
// staff can resolve the double-booking without digging through records.
type VehicleConflictError struct {
	VehicleModel string
	DriverName   string
}

func NewVehicleConflictError(vehicleModel, driverName string) *VehicleConflictError {
	return &VehicleConflictError{VehicleModel: vehicleModel, DriverName: driverName}
}

func (e *VehicleConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: vehicle %s is already assigned to %s on an active delivery",
		ErrConflict, e.VehicleModel, e.DriverName))
}

func (e *VehicleConflictError) Unwrap() error {
	return ErrConflict
}

// PermissionDeniedError indicates the acting user's role does not permit
// the requested operation.
type PermissionDeniedError struct {
	Role      string
	Operation string
}

func NewPermissionDeniedError(role, operation string) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Operation: operation}
}

func (e *PermissionDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %s may not %s", ErrPermissionDenied, e.Role, e.Operation))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
