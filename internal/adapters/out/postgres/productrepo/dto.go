// Package productrepo persists the catalog's stock counters. The engine
// never creates products; it only reads the counters an order references
// and writes back what the deduction touched.
package productrepo

import (
	"fulfillment/internal/core/domain/model/product"
)

// ProductDTO is the catalog slice the engine cares about: identity,
// price, and the stock counter with its derived three-tier status.
type ProductDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(255)"`
	Price        float64 `gorm:"type:numeric(12,2)"`
	StockLevel   int
	MinimumStock int
	StockStatus  string `gorm:"type:varchar(16);index"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// VariationDTO is one product variation. StockLevel is nullable: a NULL
// counter means the variation rides on its parent product's stock.
type VariationDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ProductID  int64  `gorm:"index"`
	Name       string `gorm:"type:varchar(255)"`
	StockLevel *int
}

// TableName overrides GORM's default naming to use "product_variations".
func (VariationDTO) TableName() string {
	return "product_variations"
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Price, dto.StockLevel, dto.MinimumStock)
}

func variationToDomain(dto VariationDTO) (*product.Variation, error) {
	return product.RestoreVariation(dto.ID, dto.ProductID, dto.Name, dto.StockLevel)
}
