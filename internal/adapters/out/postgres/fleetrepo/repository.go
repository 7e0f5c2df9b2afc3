// Package fleetrepo reads fleet vehicles and delivery drivers. Both are
// read models for the engine: assignment needs the vehicle for conflict
// messages and the driver for names and phones, and never mutates either.
package fleetrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/pkg/errs"
)

// VehicleDTO is the database representation of a fleet vehicle.
type VehicleDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Model       string `gorm:"type:varchar(128)"`
	PlateNumber string `gorm:"type:varchar(32)"`
	Status      string `gorm:"type:varchar(32)"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// DriverDTO is the database representation of a delivery driver.
type DriverDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255)"`
	Phone string `gorm:"type:varchar(32)"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("vehicleId")
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleId", id)
		}
		return nil, err
	}

	status, err := vehicle.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(dto.ID, dto.Model, dto.PlateNumber, status)
}

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Get retrieves a driver reference by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (vehicle.DriverRef, error) {
	if id <= 0 {
		return vehicle.DriverRef{}, errs.NewValueIsRequiredError("driverId")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vehicle.DriverRef{}, errs.NewObjectNotFoundError("driverId", id)
		}
		return vehicle.DriverRef{}, err
	}

	return vehicle.DriverRef{ID: dto.ID, Name: dto.Name, Phone: dto.Phone}, nil
}
