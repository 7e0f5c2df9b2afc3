// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() formatting a single-line message
//   - Unwrap() returning the sentinel so errors.Is classification works
//
// The sentinels map directly onto the engine's failure taxonomy: validation
// failures (ErrValueIsRequired, ErrValueIsInvalid) surface as 4xx, missing
// entities (ErrObjectNotFound) as 404, business-rule violations
// (ErrInvalidState) as a definitive non-success outcome, and vehicle
// double-booking (ErrConflict) as 409. Storage failures are propagated as
// raw driver errors and surface as 500.
package errs
