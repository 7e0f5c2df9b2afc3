package productrepo

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/product"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByIDs retrieves products keyed by ID. IDs without a matching row are
// absent from the map; the stock deducter treats a missing reference as
// its own error.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error) {
	products := make(map[int64]*product.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.ID()] = p
	}

	return products, nil
}

// GetVariationsByIDs retrieves variations keyed by ID.
func (r *GormProductRepository) GetVariationsByIDs(ctx context.Context, ids []int64) (map[int64]*product.Variation, error) {
	variations := make(map[int64]*product.Variation, len(ids))
	if len(ids) == 0 {
		return variations, nil
	}

	var dtos []VariationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		v, err := variationToDomain(dto)
		if err != nil {
			return nil, err
		}
		variations[v.ID()] = v
	}

	return variations, nil
}

// UpdateStock persists a product's counter and derived status.
func (r *GormProductRepository) UpdateStock(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"stock_level":  aggregate.StockLevel(),
			"stock_status": aggregate.StockStatus().String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// UpdateVariationStock persists a variation's own counter.
func (r *GormProductRepository) UpdateVariationStock(ctx context.Context, aggregate *product.Variation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VariationDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("stock_level", aggregate.StockLevel())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
