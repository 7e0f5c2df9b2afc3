package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items, then marks the aggregate with
// the storage-assigned identifier.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.MarkPersisted(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Line items are immutable after checkout
// and are not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Omit("Items").
		Select("Status", "LastUpdated", "RejectedAt", "RejectionReason").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves an order with its line items.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate retrieves an order with its line items while holding a
// row-level lock. The lock makes the Ready-edge idempotency guard safe:
// a concurrent transition blocks here until the first one commits, then
// observes the updated status.
func (r *GormOrderRepository) GetByIDForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id int64, forUpdate bool) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	query := r.db.WithContext(ctx).Preload("Items")
	if forUpdate {
		// The lock covers only the order row; Preload reads items
		// unlocked, which is fine since items never change.
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
