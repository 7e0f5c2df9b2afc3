// Package delivery contains the Delivery aggregate: the single tracking
// record a Standard Delivery order carries from preparation to hand-over.
//
// The aggregate enforces terminality (Delivered/Cancelled records are never
// revived) and owns the assignment, cancellation, and reschedule metadata.
// Cross-record invariants (one active delivery per order, no vehicle
// double-booking across deliveries) live in the domain services and the
// command handlers that can see more than one record at a time.
package delivery
