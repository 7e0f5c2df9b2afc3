package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was
	// not created through RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct")
)

// StockStatus is the derived availability label recomputed whenever a
// product's stock level changes.
type StockStatus int

const (
	// StockStatusUnknown represents an invalid or undefined stock status.
	StockStatusUnknown StockStatus = iota

	// InStock means the stock level is above the low-stock threshold.
	InStock

	// LowStock means the stock level is at or below the product's
	// minimum stock threshold but still positive.
	LowStock

	// OutOfStock means the stock level is zero or below.
	OutOfStock
)

func getStockStatusStrings() map[StockStatus]string {
	return map[StockStatus]string{
		InStock:    "In Stock",
		LowStock:   "Low Stock",
		OutOfStock: "Out of Stock",
	}
}

// ParseStockStatus converts a persisted stock status string.
func ParseStockStatus(s string) (StockStatus, error) {
	for status, str := range getStockStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StockStatusUnknown, errs.NewValueIsInvalidErrorWithCause("stockStatus",
		fmt.Errorf("%q is not a valid stock status", s))
}

// String returns the persisted representation of the stock status.
func (s StockStatus) String() string {
	if str, ok := getStockStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StockStatusFor derives the status label from a stock level and a
// low-stock threshold:
//
//	level <= 0        -> Out of Stock
//	level <= minimum  -> Low Stock
//	otherwise         -> In Stock
func StockStatusFor(stockLevel, minimumStock int) StockStatus {
	switch {
	case stockLevel <= 0:
		return OutOfStock
	case stockLevel <= minimumStock:
		return LowStock
	default:
		return InStock
	}
}

// Product is a catalog entry carrying its own stock counter. The counter is
// a shared mutated-in-place resource: deduction happens inside the order
// transition's transaction, and the derived StockStatus is recomputed on
// every deduction.
//
// Stock is not clamped at zero before deduction. Whether over-selling
// should be blocked is an open product decision; the engine reports
// Out of Stock for any non-positive level.
type Product struct {
	id           int64
	name         string
	price        float64
	stockLevel   int
	minimumStock int
	stockStatus  StockStatus

	isConstructed bool
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id int64, name string, price float64, stockLevel, minimumStock int) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("productId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		stockLevel:    stockLevel,
		minimumStock:  minimumStock,
		stockStatus:   StockStatusFor(stockLevel, minimumStock),
		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price. Historical orders carry their
// own captured unit prices and are unaffected by changes here.
func (p *Product) Price() float64 {
	return p.price
}

// StockLevel returns the current stock counter.
func (p *Product) StockLevel() int {
	return p.stockLevel
}

// MinimumStock returns the low-stock threshold.
func (p *Product) MinimumStock() int {
	return p.minimumStock
}

// StockStatus returns the derived availability label.
func (p *Product) StockStatus() StockStatus {
	return p.stockStatus
}

// Deduct decrements the product's stock counter by quantity and recomputes
// the derived stock status.
func (p *Product) Deduct(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stockLevel -= quantity
	p.stockStatus = StockStatusFor(p.stockLevel, p.minimumStock)
	return nil
}
