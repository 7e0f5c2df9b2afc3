package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the fulfillment transaction boundary: the order
// status update, the inventory deduction, and the delivery-record upsert
// of one transition execute through repositories bound to the same
// database transaction, committed only after all of them succeed.
// Notifications are deliberately outside this boundary.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// DeliveryRepository returns a DeliveryRepository bound to the
	// current transaction.
	DeliveryRepository() DeliveryRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository
}
