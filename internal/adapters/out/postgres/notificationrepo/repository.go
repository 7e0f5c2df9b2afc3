// Package notificationrepo persists the append-only notification audit
// rows written after a transition commits.
package notificationrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/notification"
)

// NotificationDTO is the database representation of a notification row.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int64     `gorm:"index"`
	Audience  string    `gorm:"type:varchar(16);index"`
	EventType string    `gorm:"type:varchar(32)"`
	Message   string    `gorm:"type:text"`
	Read      bool
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotificationRepository implements ports.NotificationRepository
// using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification
// repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add persists one notification row.
func (r *GormNotificationRepository) Add(ctx context.Context, row *notification.Notification) error {
	dto := NotificationDTO{
		ID:        row.ID,
		OrderID:   row.OrderID,
		Audience:  string(row.Audience),
		EventType: string(row.EventType),
		Message:   row.Message,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
