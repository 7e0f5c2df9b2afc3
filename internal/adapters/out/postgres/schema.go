package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/fleetrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
)

// Migrate creates or updates every table the engine owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&productrepo.VariationDTO{},
		&deliveryrepo.DeliveryDTO{},
		&fleetrepo.VehicleDTO{},
		&fleetrepo.DriverDTO{},
		&notificationrepo.NotificationDTO{},
	)
}

// Verify checks once at startup that the columns older deployments
// acquired in later migrations actually exist, and fails fast if any is
// missing. This replaces checking for the columns on every request.
func Verify(db *gorm.DB) error {
	migrator := db.Migrator()

	required := []struct {
		model  any
		column string
	}{
		{&deliveryrepo.DeliveryDTO{}, "reschedule_count"},
		{&deliveryrepo.DeliveryDTO{}, "last_rescheduled_at"},
		{&deliveryrepo.DeliveryDTO{}, "cancellation_reason"},
		{&productrepo.VariationDTO{}, "stock_level"},
		{&orderrepo.OrderDTO{}, "rejection_reason"},
	}

	for _, req := range required {
		if !migrator.HasColumn(req.model, req.column) {
			return fmt.Errorf("schema verification failed: column %q is missing; run migrations", req.column)
		}
	}

	return nil
}
