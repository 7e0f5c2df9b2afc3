// Package postgres provides the GORM-based Unit of Work that gives each
// business operation one database transaction shared by every repository
// it touches. The fulfillment engine leans on this for its central
// guarantee: an order status change, the stock deduction it triggers, and
// the delivery record it creates either all land or none do.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/fleetrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/ports"
)

// TrackedAggregate records an aggregate modified during the unit of work.
// After a successful Commit the caller can walk the tracked aggregates to
// run post-commit processing such as notification dispatch.
type TrackedAggregate struct {
	ID        int64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances. Each business
// operation gets a fresh instance so concurrent operations never share
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// product, delivery, and fleet repositories. Repositories
// requested after Begin are bound to the transaction; requested without
// one, they run against the base connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts a transaction. Calling Begin on an instance that already
// has one is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction
// when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction
// when none is active, which makes the deferred rollback after a
// successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProductRepository returns a product repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

// DeliveryRepository returns a delivery repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// VehicleRepository returns a vehicle read repository bound to the
// current transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return fleetrepo.NewGormVehicleRepository(uow.conn())
}

// DriverRepository returns a driver read repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return fleetrepo.NewGormDriverRepository(uow.conn())
}

// TrackAggregate registers a modified aggregate for post-transaction
// processing. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns the aggregates modified through this unit
// of work, in the order the repositories registered them.
func (uow *GormUnitOfWork) GetTrackedAggregates() []TrackedAggregate {
	tracked := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(tracked, uow.trackedAggregates)
	return tracked
}
