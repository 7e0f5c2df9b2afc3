// Package commands contains the business operations that modify system
// state. All commands follow a consistent pattern: guarded construction,
// validation, transaction management through a unit of work, and explicit
// post-commit event dispatch.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command declares the narrowest repository surface it
// needs; the concrete unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within
	// a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository
	// within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// FleetRepoFactory provides access to vehicle and driver lookups
	// within a transaction.
	FleetRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
		DriverRepository() ports.DriverRepository
	}

	// OrderUoW manages transactions for order-only operations (checkout).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages the status-transition transaction: the order
	// row, the stock counters, and the delivery record move together.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		DeliveryRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// AssignmentUoW manages the driver/vehicle assignment transaction.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		FleetRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// DeliveryUoW manages delivery-metadata transactions (cancel,
	// reschedule, proof of delivery).
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
