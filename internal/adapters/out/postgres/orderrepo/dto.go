// Package orderrepo persists order aggregates. Orders map to two tables:
// the order row itself and its immutable line items, loaded and saved as
// one association.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order aggregate. Status
// and delivery method are stored as their display strings; legacy status
// spellings still present in old rows are mapped on read by ParseStatus.
type OrderDTO struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64          `gorm:"index"`
	CustomerPhone   string         `gorm:"type:varchar(32)"`
	Amount          float64        `gorm:"type:numeric(12,2)"`
	Status          string         `gorm:"type:varchar(32);index"`
	DeliveryMethod  string         `gorm:"type:varchar(32)"`
	OrderDate       time.Time      `gorm:"index"`
	LastUpdated     time.Time
	RejectedAt      *time.Time
	RejectionReason string         `gorm:"type:text"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one persisted line item.
type OrderItemDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	OrderID     int64   `gorm:"index"`
	ProductID   int64   `gorm:"index"`
	VariationID *int64  `gorm:"index"`
	Quantity    int
	UnitPrice   float64 `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     o.ID(),
			ProductID:   item.ProductID(),
			VariationID: item.VariationID(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		CustomerPhone:   o.CustomerPhone(),
		Amount:          o.Amount(),
		Status:          o.Status().String(),
		DeliveryMethod:  o.DeliveryMethod().String(),
		OrderDate:       o.OrderDate(),
		LastUpdated:     o.LastUpdated(),
		RejectedAt:      o.RejectedAt(),
		RejectionReason: o.RejectionReason(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.ParseDeliveryMethod(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.ProductID, itemDTO.VariationID,
			itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.CustomerPhone,
		dto.Amount,
		status,
		method,
		items,
		dto.OrderDate,
		dto.LastUpdated,
		dto.RejectedAt,
		dto.RejectionReason,
	)
}
